package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrganizationsByEnterpriseQueryIsNotConstructed = errors.New(
	"GetOrganizationsByEnterpriseQuery must be created via NewGetOrganizationsByEnterpriseQuery constructor",
)

// GetOrganizationsByEnterpriseQuery retrieves one enterprise's organizations.
type GetOrganizationsByEnterpriseQuery struct {
	enterpriseID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrganizationsByEnterpriseQuery creates a query for one enterprise's organizations.
func NewGetOrganizationsByEnterpriseQuery(enterpriseID kernel.ID) (GetOrganizationsByEnterpriseQuery, error) {
	if err := enterpriseID.Validate(); err != nil {
		return GetOrganizationsByEnterpriseQuery{}, errs.NewValueIsRequiredErrorWithCause("enterpriseId", err)
	}
	return GetOrganizationsByEnterpriseQuery{
		enterpriseID: enterpriseID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrganizationsByEnterpriseQuery) Validate() error {
	return q.guard.Validate(ErrGetOrganizationsByEnterpriseQueryIsNotConstructed)
}

// EnterpriseID returns the enterprise whose organizations are requested.
func (q GetOrganizationsByEnterpriseQuery) EnterpriseID() kernel.ID { return q.enterpriseID }

// OrganizationResponse represents one organization row.
type OrganizationResponse struct {
	ID           kernel.ID
	Name         string
	Kind         string
	EnterpriseID kernel.ID
}
