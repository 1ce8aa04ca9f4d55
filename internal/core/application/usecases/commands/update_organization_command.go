package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tenant"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrUpdateOrganizationCommandIsNotConstructed is returned when an
// UpdateOrganizationCommand was not created via NewUpdateOrganizationCommand.
var ErrUpdateOrganizationCommandIsNotConstructed = errors.New(
	"UpdateOrganizationCommand must be created via NewUpdateOrganizationCommand constructor",
)

// UpdateOrganizationCommand carries the full replacement state of an
// organization.
type UpdateOrganizationCommand struct {
	organizationID kernel.ID
	name           string
	kind           string
	enterpriseID   kernel.ID

	guard guard.ConstructorGuard
}

// NewUpdateOrganizationCommand creates a command to update an organization.
func NewUpdateOrganizationCommand(
	organizationID kernel.ID,
	name string,
	kind string,
	enterpriseID kernel.ID,
) (UpdateOrganizationCommand, error) {
	if err := organizationID.Validate(); err != nil {
		return UpdateOrganizationCommand{}, errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}
	if name == "" {
		return UpdateOrganizationCommand{}, errs.NewValueIsRequiredError("name")
	}
	if kind == "" {
		return UpdateOrganizationCommand{}, errs.NewValueIsRequiredError("kind")
	}
	if err := enterpriseID.Validate(); err != nil {
		return UpdateOrganizationCommand{}, errs.NewValueIsRequiredErrorWithCause("enterpriseId", err)
	}

	return UpdateOrganizationCommand{
		organizationID: organizationID,
		name:           name,
		kind:           kind,
		enterpriseID:   enterpriseID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrganizationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrganizationCommandIsNotConstructed)
}

// OrganizationID returns the identifier of the organization to update.
func (c UpdateOrganizationCommand) OrganizationID() kernel.ID { return c.organizationID }

// Name returns the new organization name.
func (c UpdateOrganizationCommand) Name() string { return c.name }

// Kind returns the new organization kind.
func (c UpdateOrganizationCommand) Kind() string { return c.kind }

// EnterpriseID returns the owning enterprise's identifier.
func (c UpdateOrganizationCommand) EnterpriseID() kernel.ID { return c.enterpriseID }

// UpdateOrganizationCommandHandler replaces an organization's stored state.
// The tenant gate covers both the enterprise the organization currently
// belongs to and the one it is being moved to, so an enterprise admin cannot
// pull a foreign organization in, nor push one of theirs out, unilaterally.
type UpdateOrganizationCommandHandler struct {
	uowFactory TenantUoWFactory
	authorizer services.Authorizer
}

// NewUpdateOrganizationCommandHandler creates a handler for organization updates.
func NewUpdateOrganizationCommandHandler(
	uowFactory TenantUoWFactory,
	authorizer services.Authorizer,
) UpdateOrganizationCommandHandler {
	return UpdateOrganizationCommandHandler{uowFactory: uowFactory, authorizer: authorizer}
}

// Handle processes the organization update command. Updating an organization
// that no longer exists is a silent no-op.
func (h UpdateOrganizationCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd UpdateOrganizationCommand,
) error {
	const action = "update organization"

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
	if existing.EnterpriseID() != cmd.EnterpriseID() {
		if err = h.authorizer.Authorize(actor.Role(), actorScope, cmd.EnterpriseID(), action); err != nil {
			return err
		}
	}

	organization, err := tenant.RestoreOrganization(
		cmd.OrganizationID(),
		cmd.Name(),
		cmd.Kind(),
		cmd.EnterpriseID(),
	)
	if err != nil {
		return err
	}

	if err = organizations.Update(ctx, organization); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
