package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAllEnterprisesQueryIsNotConstructed = errors.New(
	"GetAllEnterprisesQuery must be created via NewGetAllEnterprisesQuery constructor",
)

// GetAllEnterprisesQuery retrieves every enterprise. Ungated: the list of
// participating businesses is directory data, not tenant data.
type GetAllEnterprisesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllEnterprisesQuery creates a query for the enterprise directory.
func NewGetAllEnterprisesQuery() GetAllEnterprisesQuery {
	return GetAllEnterprisesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllEnterprisesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllEnterprisesQueryIsNotConstructed)
}

// EnterpriseResponse represents one enterprise row.
type EnterpriseResponse struct {
	ID   kernel.ID
	Name string
	Kind string
}
