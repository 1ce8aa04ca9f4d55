package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrDeleteEnterpriseCommandIsNotConstructed is returned when a
// DeleteEnterpriseCommand was not created via NewDeleteEnterpriseCommand.
var ErrDeleteEnterpriseCommandIsNotConstructed = errors.New(
	"DeleteEnterpriseCommand must be created via NewDeleteEnterpriseCommand constructor",
)

// DeleteEnterpriseCommand identifies the enterprise to remove.
type DeleteEnterpriseCommand struct {
	enterpriseID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteEnterpriseCommand creates a command to delete an enterprise.
func NewDeleteEnterpriseCommand(enterpriseID kernel.ID) (DeleteEnterpriseCommand, error) {
	if err := enterpriseID.Validate(); err != nil {
		return DeleteEnterpriseCommand{}, errs.NewValueIsRequiredErrorWithCause("enterpriseId", err)
	}
	return DeleteEnterpriseCommand{enterpriseID: enterpriseID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteEnterpriseCommand) Validate() error {
	return c.guard.Validate(ErrDeleteEnterpriseCommandIsNotConstructed)
}

// EnterpriseID returns the identifier of the enterprise to delete.
func (c DeleteEnterpriseCommand) EnterpriseID() kernel.ID { return c.enterpriseID }

// DeleteEnterpriseCommandHandler removes enterprises. System administrators
// only. Deletion is refused while organizations still reference the
// enterprise, so dependents never end up orphaned.
type DeleteEnterpriseCommandHandler struct {
	uowFactory TenantUoWFactory
	dependents DependentCounter
}

// DependentCounter reports how many organizations still belong to an
// enterprise. Backed by the read side; used to refuse deletes that would
// orphan dependents.
type DependentCounter interface {
	CountOrganizationsByEnterprise(ctx context.Context, enterpriseID kernel.ID) (int64, error)
}

// ErrEnterpriseHasDependents is returned when an enterprise still has
// organizations attached and therefore cannot be deleted.
var ErrEnterpriseHasDependents = errors.New("enterprise still has organizations attached")

// NewDeleteEnterpriseCommandHandler creates a handler for enterprise deletion.
func NewDeleteEnterpriseCommandHandler(
	uowFactory TenantUoWFactory,
	dependents DependentCounter,
) DeleteEnterpriseCommandHandler {
	return DeleteEnterpriseCommandHandler{uowFactory: uowFactory, dependents: dependents}
}

// Handle processes the enterprise deletion command. Deleting an enterprise
// that no longer exists is a silent no-op.
func (h DeleteEnterpriseCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd DeleteEnterpriseCommand,
) error {
	const action = "delete enterprise"

	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireActor(actor, action); err != nil {
		return err
	}
	if actor.Role() != account.RoleSystemAdmin {
		return errs.NewUnauthorizedError(action)
	}

	count, err := h.dependents.CountOrganizationsByEnterprise(ctx, cmd.EnterpriseID())
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEnterpriseHasDependents
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err = uow.EnterpriseRepository().Delete(ctx, cmd.EnterpriseID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
