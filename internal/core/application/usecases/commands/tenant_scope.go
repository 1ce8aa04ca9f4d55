package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// resolveTenantScope follows an organization reference to its enterprise.
// An absent reference, a vanished organization, or a failed lookup all yield
// "no tenant" (zero). Failing closed here means a broken reference can only
// ever deny, never widen, an actor's reach.
func resolveTenantScope(
	ctx context.Context,
	organizations ports.OrganizationRepository,
	organizationID kernel.ID,
) kernel.ID {
	if organizationID.IsZero() {
		return 0
	}

	organization, err := organizations.Get(ctx, organizationID)
	if err != nil {
		return 0
	}

	return organization.EnterpriseID()
}

// requireActor rejects unauthenticated or improperly constructed actors with
// the same unauthorized outcome the policy itself produces.
func requireActor(actor *account.User, action string) error {
	if err := actor.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause(action, err)
	}
	return nil
}

// requireStaff rejects actors whose role is not a staff role. Menu management
// is staff-only but carries no tenant scope, so the check stops at the role.
func requireStaff(actor *account.User, action string) error {
	if err := requireActor(actor, action); err != nil {
		return err
	}
	if !actor.Role().IsStaff() {
		return errs.NewUnauthorizedError(action)
	}
	return nil
}
