package services

import (
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Authorizer is the tenant authorization policy. It is a pure decision
// function: it reads nothing, writes nothing, and is safe to call
// concurrently. Tenant identifiers must already be resolved (user ->
// organization -> enterprise) before consulting the policy; a zero ID stands
// for "no tenant".
//
// Rules, in priority order:
//  1. SystemAdmin is allowed everything, for every target tenant, including
//     targets that resolve to no tenant.
//  2. EnterpriseAdmin is allowed when the actor's resolved enterprise equals
//     the target's, and both actually resolve to a tenant.
//  3. Every other role is denied.
//
// Unknown roles are an error, not a silent deny: roles come from a closed
// enumeration and an unmatched value means corrupted data.
//
// Example:
//
//	authorizer := services.NewAuthorizer()
//	err := authorizer.Authorize(actor.Role(), actorTenant, targetTenant, "create work request")
//	if errors.Is(err, errs.ErrUnauthorized) {
//	    // deny without revealing whether the target exists
//	}
type Authorizer struct{}

// NewAuthorizer creates the policy service.
func NewAuthorizer() Authorizer {
	return Authorizer{}
}

// Authorize decides whether an actor with the given role and resolved tenant
// scope may perform the named action on a resource in the target tenant
// scope. The action is used only to label the denial; it never leaks whether
// the target resource exists.
func (Authorizer) Authorize(
	role account.Role,
	actorTenantID kernel.ID,
	targetTenantID kernel.ID,
	action string,
) error {
	switch role {
	case account.RoleSystemAdmin:
		return nil
	case account.RoleEnterpriseAdmin:
		if !actorTenantID.IsZero() && actorTenantID == targetTenantID {
			return nil
		}
		return errs.NewUnauthorizedError(action)
	case account.RoleManager, account.RoleCustomer, account.RoleDeliveryMan:
		return errs.NewUnauthorizedError(action)
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", role.Validate())
	}
}
