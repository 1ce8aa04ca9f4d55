package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tenant"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrUpdateEnterpriseCommandIsNotConstructed is returned when an
// UpdateEnterpriseCommand was not created via NewUpdateEnterpriseCommand.
var ErrUpdateEnterpriseCommandIsNotConstructed = errors.New(
	"UpdateEnterpriseCommand must be created via NewUpdateEnterpriseCommand constructor",
)

// UpdateEnterpriseCommand carries the full replacement state of an enterprise.
type UpdateEnterpriseCommand struct {
	enterpriseID kernel.ID
	name         string
	kind         string

	guard guard.ConstructorGuard
}

// NewUpdateEnterpriseCommand creates a command to update an enterprise.
func NewUpdateEnterpriseCommand(
	enterpriseID kernel.ID,
	name string,
	kind string,
) (UpdateEnterpriseCommand, error) {
	if err := enterpriseID.Validate(); err != nil {
		return UpdateEnterpriseCommand{}, errs.NewValueIsRequiredErrorWithCause("enterpriseId", err)
	}
	if name == "" {
		return UpdateEnterpriseCommand{}, errs.NewValueIsRequiredError("name")
	}
	if kind == "" {
		return UpdateEnterpriseCommand{}, errs.NewValueIsRequiredError("kind")
	}

	return UpdateEnterpriseCommand{
		enterpriseID: enterpriseID,
		name:         name,
		kind:         kind,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateEnterpriseCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEnterpriseCommandIsNotConstructed)
}

// EnterpriseID returns the identifier of the enterprise to update.
func (c UpdateEnterpriseCommand) EnterpriseID() kernel.ID { return c.enterpriseID }

// Name returns the new enterprise name.
func (c UpdateEnterpriseCommand) Name() string { return c.name }

// Kind returns the new enterprise kind.
func (c UpdateEnterpriseCommand) Kind() string { return c.kind }

// UpdateEnterpriseCommandHandler replaces an enterprise's stored state.
// System administrators only.
type UpdateEnterpriseCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewUpdateEnterpriseCommandHandler creates a handler for enterprise updates.
func NewUpdateEnterpriseCommandHandler(uowFactory TenantUoWFactory) UpdateEnterpriseCommandHandler {
	return UpdateEnterpriseCommandHandler{uowFactory: uowFactory}
}

// Handle processes the enterprise update command.
func (h UpdateEnterpriseCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd UpdateEnterpriseCommand,
) error {
	const action = "update enterprise"

	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireActor(actor, action); err != nil {
		return err
	}
	if actor.Role() != account.RoleSystemAdmin {
		return errs.NewUnauthorizedError(action)
	}

	enterprise, err := tenant.RestoreEnterprise(cmd.EnterpriseID(), cmd.Name(), cmd.Kind())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EnterpriseRepository().Update(ctx, enterprise); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
