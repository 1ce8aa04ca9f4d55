package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetAllWorkRequestsQueryIsNotConstructed = errors.New(
	"GetAllWorkRequestsQuery must be created via NewGetAllWorkRequestsQuery constructor",
)

// GetAllWorkRequestsQuery retrieves every work request in the system, newest
// first. An operator view, not a tenant one.
type GetAllWorkRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllWorkRequestsQuery creates a query for the global request listing.
func NewGetAllWorkRequestsQuery() GetAllWorkRequestsQuery {
	return GetAllWorkRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllWorkRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWorkRequestsQueryIsNotConstructed)
}
