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

// ErrDeleteUserCommandIsNotConstructed is returned when a DeleteUserCommand
// was not created via NewDeleteUserCommand.
var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand identifies the user to remove.
type DeleteUserCommand struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to delete a user.
func NewDeleteUserCommand(userID kernel.ID) (DeleteUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return DeleteUserCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	return DeleteUserCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user to delete.
func (c DeleteUserCommand) UserID() kernel.ID { return c.userID }

// DeleteUserCommandHandler removes users. The tenant gate resolves from the
// stored record's organization, looked up before the delete: authority is
// judged over where the user currently belongs.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
	authorizer services.Authorizer
}

// NewDeleteUserCommandHandler creates a handler for user deletion.
func NewDeleteUserCommandHandler(
	uowFactory UserUoWFactory,
	authorizer services.Authorizer,
) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{uowFactory: uowFactory, authorizer: authorizer}
}

// Handle processes the user deletion command. Deleting a user that no longer
// exists is a silent no-op.
func (h DeleteUserCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd DeleteUserCommand,
) error {
	const action = "delete user"

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

	users := uow.UserRepository()
	organizations := uow.OrganizationRepository()

	existing, err := users.Get(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	actorScope := resolveTenantScope(ctx, organizations, actor.OrganizationID())
	targetScope := resolveTenantScope(ctx, organizations, existing.OrganizationID())
	if err = h.authorizer.Authorize(actor.Role(), actorScope, targetScope, action); err != nil {
		return err
	}

	if err = users.Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
