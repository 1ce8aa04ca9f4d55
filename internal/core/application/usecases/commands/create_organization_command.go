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

// ErrCreateOrganizationCommandIsNotConstructed is returned when a
// CreateOrganizationCommand was not created via NewCreateOrganizationCommand.
var ErrCreateOrganizationCommandIsNotConstructed = errors.New(
	"CreateOrganizationCommand must be created via NewCreateOrganizationCommand constructor",
)

// CreateOrganizationCommand carries the data for registering a new
// organization under an enterprise.
type CreateOrganizationCommand struct {
	name         string
	kind         string
	enterpriseID kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateOrganizationCommand creates a command to register an organization.
func NewCreateOrganizationCommand(
	name string,
	kind string,
	enterpriseID kernel.ID,
) (CreateOrganizationCommand, error) {
	if name == "" {
		return CreateOrganizationCommand{}, errs.NewValueIsRequiredError("name")
	}
	if kind == "" {
		return CreateOrganizationCommand{}, errs.NewValueIsRequiredError("kind")
	}
	if err := enterpriseID.Validate(); err != nil {
		return CreateOrganizationCommand{}, errs.NewValueIsRequiredErrorWithCause("enterpriseId", err)
	}

	return CreateOrganizationCommand{
		name:         name,
		kind:         kind,
		enterpriseID: enterpriseID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrganizationCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrganizationCommandIsNotConstructed)
}

// Name returns the organization name.
func (c CreateOrganizationCommand) Name() string { return c.name }

// Kind returns the organization kind, such as Kitchen or Dispatch.
func (c CreateOrganizationCommand) Kind() string { return c.kind }

// EnterpriseID returns the owning enterprise's identifier.
func (c CreateOrganizationCommand) EnterpriseID() kernel.ID { return c.enterpriseID }

// CreateOrganizationCommandHandler registers organizations. The tenant gate
// targets the enterprise the organization will belong to.
type CreateOrganizationCommandHandler struct {
	uowFactory TenantUoWFactory
	authorizer services.Authorizer
}

// NewCreateOrganizationCommandHandler creates a handler for organization registration.
func NewCreateOrganizationCommandHandler(
	uowFactory TenantUoWFactory,
	authorizer services.Authorizer,
) CreateOrganizationCommandHandler {
	return CreateOrganizationCommandHandler{uowFactory: uowFactory, authorizer: authorizer}
}

// Handle processes the organization creation command and returns the stored
// organization with its assigned identifier.
func (h CreateOrganizationCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd CreateOrganizationCommand,
) (*tenant.Organization, error) {
	const action = "create organization"

	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireActor(actor, action); err != nil {
		return nil, err
	}

	organization, err := tenant.NewOrganization(cmd.Name(), cmd.Kind(), cmd.EnterpriseID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	organizations := uow.OrganizationRepository()

	actorScope := resolveTenantScope(ctx, organizations, actor.OrganizationID())
	if err = h.authorizer.Authorize(actor.Role(), actorScope, cmd.EnterpriseID(), action); err != nil {
		return nil, err
	}

	if err = organizations.Add(ctx, organization); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return organization, nil
}
