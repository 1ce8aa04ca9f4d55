package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrDeleteOrganizationCommandIsNotConstructed is returned when a
// DeleteOrganizationCommand was not created via NewDeleteOrganizationCommand.
var ErrDeleteOrganizationCommandIsNotConstructed = errors.New(
	"DeleteOrganizationCommand must be created via NewDeleteOrganizationCommand constructor",
)

// ErrOrganizationHasDependents is returned when an organization still has
// users attached and therefore cannot be deleted.
var ErrOrganizationHasDependents = errors.New("organization still has users attached")

// DeleteOrganizationCommand identifies the organization to remove.
type DeleteOrganizationCommand struct {
	organizationID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteOrganizationCommand creates a command to delete an organization.
func NewDeleteOrganizationCommand(organizationID kernel.ID) (DeleteOrganizationCommand, error) {
	if err := organizationID.Validate(); err != nil {
		return DeleteOrganizationCommand{}, errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}
	return DeleteOrganizationCommand{organizationID: organizationID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrganizationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrganizationCommandIsNotConstructed)
}

// OrganizationID returns the identifier of the organization to delete.
func (c DeleteOrganizationCommand) OrganizationID() kernel.ID { return c.organizationID }

// UserCounter reports how many users still belong to an organization. Backed
// by the read side; used to refuse deletes that would orphan users.
type UserCounter interface {
	CountUsersByOrganization(ctx context.Context, organizationID kernel.ID) (int64, error)
}

// DeleteOrganizationCommandHandler removes organizations. The tenant gate
// targets the enterprise the organization belongs to. Deletion is refused
// while users still reference the organization.
type DeleteOrganizationCommandHandler struct {
	uowFactory TenantUoWFactory
	authorizer services.Authorizer
	dependents UserCounter
}

// NewDeleteOrganizationCommandHandler creates a handler for organization deletion.
func NewDeleteOrganizationCommandHandler(
	uowFactory TenantUoWFactory,
	authorizer services.Authorizer,
	dependents UserCounter,
) DeleteOrganizationCommandHandler {
	return DeleteOrganizationCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		dependents: dependents,
	}
}

// Handle processes the organization deletion command. Deleting an
// organization that no longer exists is a silent no-op.
func (h DeleteOrganizationCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd DeleteOrganizationCommand,
) error {
	const action = "delete organization"

	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireActor(actor, action); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	organizations := uow.OrganizationRepository()

	existing, err := organizations.Get(ctx, cmd.OrganizationID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	actorScope := resolveTenantScope(ctx, organizations, actor.OrganizationID())
	if err = h.authorizer.Authorize(actor.Role(), actorScope, existing.EnterpriseID(), action); err != nil {
		return err
	}

	count, err := h.dependents.CountUsersByOrganization(ctx, cmd.OrganizationID())
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrOrganizationHasDependents
	}

	if err = organizations.Delete(ctx, cmd.OrganizationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
