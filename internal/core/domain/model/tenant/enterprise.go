// Package tenant holds the tenancy hierarchy: an Enterprise is the root of a
// tenant, and Organizations are its sub-units (kitchen, admin team, dispatch
// team). By convention an Organization also stands in as a "restaurant id"
// when referenced from orders and menu items.
package tenant

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Enterprise types used by the seeded data. The set is open: new enterprise
// kinds can appear without a code change.
const (
	EnterpriseTypeRestaurant = "Restaurant"
	EnterpriseTypeDelivery   = "Delivery"
)

// ErrEnterpriseIsNotConstructed is returned when an Enterprise was not created
// through NewEnterprise or RestoreEnterprise.
var ErrEnterpriseIsNotConstructed = errors.New("Enterprise must be created via NewEnterprise or RestoreEnterprise")

// Enterprise is the root of tenancy. Every user and resource below it resolves
// its tenant scope by following Organization -> Enterprise.
type Enterprise struct {
	id   kernel.ID
	name string
	kind string

	isConstructed bool
}

// NewEnterprise creates a not-yet-persisted Enterprise.
func NewEnterprise(name, kind string) (*Enterprise, error) {
	enterprise := &Enterprise{isConstructed: true}

	if err := errors.Join(
		enterprise.setName(name),
		enterprise.setKind(kind),
	); err != nil {
		return nil, err
	}

	return enterprise, nil
}

// RestoreEnterprise reconstructs an Enterprise from persistence.
func RestoreEnterprise(id kernel.ID, name, kind string) (*Enterprise, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	enterprise, err := NewEnterprise(name, kind)
	if err != nil {
		return nil, err
	}

	enterprise.id = id
	return enterprise, nil
}

// Validate ensures the Enterprise was built through a constructor.
func (e *Enterprise) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEnterpriseIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier after a successful create.
func (e *Enterprise) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

// ID returns the enterprise identifier, zero until persisted.
func (e *Enterprise) ID() kernel.ID {
	return e.id
}

// Name returns the enterprise name.
func (e *Enterprise) Name() string {
	return e.name
}

// Kind returns the enterprise type, e.g. "Restaurant" or "Delivery".
func (e *Enterprise) Kind() string {
	return e.kind
}

func (e *Enterprise) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("enterprise name")
	}
	e.name = strings.TrimSpace(name)
	return nil
}

func (e *Enterprise) setKind(kind string) error {
	if strings.TrimSpace(kind) == "" {
		return errs.NewValueIsRequiredError("enterprise type")
	}
	e.kind = strings.TrimSpace(kind)
	return nil
}
