package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrDeleteMenuItemCommandIsNotConstructed is returned when a
// DeleteMenuItemCommand was not created via NewDeleteMenuItemCommand.
var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand identifies the menu item to remove.
type DeleteMenuItemCommand struct {
	menuItemID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a command to delete a menu item.
func NewDeleteMenuItemCommand(menuItemID kernel.ID) (DeleteMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return DeleteMenuItemCommand{}, errs.NewValueIsRequiredErrorWithCause("menuItemId", err)
	}
	return DeleteMenuItemCommand{menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the item to delete.
func (c DeleteMenuItemCommand) MenuItemID() kernel.ID { return c.menuItemID }

// DeleteMenuItemCommandHandler removes menu items. Staff only. Orders are
// unaffected: their lines carry snapshots, not references.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewDeleteMenuItemCommandHandler creates a handler for menu item deletion.
func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle processes the menu item deletion command. Deleting an item that no
// longer exists is a silent no-op.
func (h DeleteMenuItemCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd DeleteMenuItemCommand,
) error {
	const action = "delete menu item"

	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireStaff(actor, action); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err := uow.MenuItemRepository().Delete(ctx, cmd.MenuItemID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
