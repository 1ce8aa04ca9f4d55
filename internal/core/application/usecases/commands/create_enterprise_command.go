package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/tenant"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrCreateEnterpriseCommandIsNotConstructed is returned when a
// CreateEnterpriseCommand was not created via NewCreateEnterpriseCommand.
var ErrCreateEnterpriseCommandIsNotConstructed = errors.New(
	"CreateEnterpriseCommand must be created via NewCreateEnterpriseCommand constructor",
)

// CreateEnterpriseCommand carries the data for registering a new enterprise.
type CreateEnterpriseCommand struct {
	name string
	kind string

	guard guard.ConstructorGuard
}

// NewCreateEnterpriseCommand creates a command to register an enterprise.
func NewCreateEnterpriseCommand(name string, kind string) (CreateEnterpriseCommand, error) {
	if name == "" {
		return CreateEnterpriseCommand{}, errs.NewValueIsRequiredError("name")
	}
	if kind == "" {
		return CreateEnterpriseCommand{}, errs.NewValueIsRequiredError("kind")
	}

	return CreateEnterpriseCommand{
		name:  name,
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEnterpriseCommand) Validate() error {
	return c.guard.Validate(ErrCreateEnterpriseCommandIsNotConstructed)
}

// Name returns the enterprise name.
func (c CreateEnterpriseCommand) Name() string { return c.name }

// Kind returns the enterprise kind, such as Restaurant or Delivery.
func (c CreateEnterpriseCommand) Kind() string { return c.kind }

// CreateEnterpriseCommandHandler registers enterprises. Enterprise management
// is reserved for system administrators: there is no enterprise-admin path,
// unlike the finer-grained tenant policy used elsewhere.
type CreateEnterpriseCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewCreateEnterpriseCommandHandler creates a handler for enterprise registration.
func NewCreateEnterpriseCommandHandler(uowFactory TenantUoWFactory) CreateEnterpriseCommandHandler {
	return CreateEnterpriseCommandHandler{uowFactory: uowFactory}
}

// Handle processes the enterprise creation command and returns the stored
// enterprise with its assigned identifier.
func (h CreateEnterpriseCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd CreateEnterpriseCommand,
) (*tenant.Enterprise, error) {
	const action = "create enterprise"

	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireActor(actor, action); err != nil {
		return nil, err
	}
	if actor.Role() != account.RoleSystemAdmin {
		return nil, errs.NewUnauthorizedError(action)
	}

	enterprise, err := tenant.NewEnterprise(cmd.Name(), cmd.Kind())
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

	if err = uow.EnterpriseRepository().Add(ctx, enterprise); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return enterprise, nil
}
