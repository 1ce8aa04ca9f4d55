package tenant

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrOrganizationIsNotConstructed is returned when an Organization was not
// created through NewOrganization or RestoreOrganization.
var ErrOrganizationIsNotConstructed = errors.New(
	"Organization must be created via NewOrganization or RestoreOrganization",
)

// Organization is a sub-unit of exactly one Enterprise. The enterprise
// reference is mandatory: an organization with no enterprise has no tenant
// scope and cannot exist.
type Organization struct {
	id           kernel.ID
	name         string
	kind         string
	enterpriseID kernel.ID

	isConstructed bool
}

// NewOrganization creates a not-yet-persisted Organization.
func NewOrganization(name, kind string, enterpriseID kernel.ID) (*Organization, error) {
	organization := &Organization{isConstructed: true}

	if err := errors.Join(
		organization.setName(name),
		organization.setKind(kind),
		organization.setEnterpriseID(enterpriseID),
	); err != nil {
		return nil, err
	}

	return organization, nil
}

// RestoreOrganization reconstructs an Organization from persistence.
func RestoreOrganization(id kernel.ID, name, kind string, enterpriseID kernel.ID) (*Organization, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	organization, err := NewOrganization(name, kind, enterpriseID)
	if err != nil {
		return nil, err
	}

	organization.id = id
	return organization, nil
}

// Validate ensures the Organization was built through a constructor.
func (o *Organization) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrganizationIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier after a successful create.
func (o *Organization) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// ID returns the organization identifier, zero until persisted.
func (o *Organization) ID() kernel.ID {
	return o.id
}

// Name returns the organization name.
func (o *Organization) Name() string {
	return o.name
}

// Kind returns the organization type, e.g. "Kitchen" or "DeliveryTeam".
func (o *Organization) Kind() string {
	return o.kind
}

// EnterpriseID returns the owning enterprise's identifier.
func (o *Organization) EnterpriseID() kernel.ID {
	return o.enterpriseID
}

func (o *Organization) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("organization name")
	}
	o.name = strings.TrimSpace(name)
	return nil
}

func (o *Organization) setKind(kind string) error {
	if strings.TrimSpace(kind) == "" {
		return errs.NewValueIsRequiredError("organization type")
	}
	o.kind = strings.TrimSpace(kind)
	return nil
}

func (o *Organization) setEnterpriseID(enterpriseID kernel.ID) error {
	if err := enterpriseID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("enterpriseId", err)
	}
	o.enterpriseID = enterpriseID
	return nil
}
