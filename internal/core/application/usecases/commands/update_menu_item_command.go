package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrUpdateMenuItemCommandIsNotConstructed is returned when an
// UpdateMenuItemCommand was not created via NewUpdateMenuItemCommand.
var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand carries the full replacement state of a menu item.
type UpdateMenuItemCommand struct {
	menuItemID   kernel.ID
	restaurantID kernel.ID
	name         string
	price        float64
	description  string

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to update a menu item.
func NewUpdateMenuItemCommand(
	menuItemID kernel.ID,
	restaurantID kernel.ID,
	name string,
	price float64,
	description string,
) (UpdateMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return UpdateMenuItemCommand{}, errs.NewValueIsRequiredErrorWithCause("menuItemId", err)
	}
	if err := restaurantID.Validate(); err != nil {
		return UpdateMenuItemCommand{}, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	if name == "" {
		return UpdateMenuItemCommand{}, errs.NewValueIsRequiredError("name")
	}

	return UpdateMenuItemCommand{
		menuItemID:   menuItemID,
		restaurantID: restaurantID,
		name:         name,
		price:        price,
		description:  description,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the item to update.
func (c UpdateMenuItemCommand) MenuItemID() kernel.ID { return c.menuItemID }

// RestaurantID returns the owning restaurant organization's identifier.
func (c UpdateMenuItemCommand) RestaurantID() kernel.ID { return c.restaurantID }

// Name returns the new dish name.
func (c UpdateMenuItemCommand) Name() string { return c.name }

// Price returns the new price per unit.
func (c UpdateMenuItemCommand) Price() float64 { return c.price }

// Description returns the new free-text description.
func (c UpdateMenuItemCommand) Description() string { return c.description }

// UpdateMenuItemCommandHandler replaces a menu item's stored state. Staff only.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle processes the menu item update command.
func (h UpdateMenuItemCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd UpdateMenuItemCommand,
) error {
	const action = "update menu item"

	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireStaff(actor, action); err != nil {
		return err
	}

	item, err := menu.RestoreItem(
		cmd.MenuItemID(),
		cmd.RestaurantID(),
		cmd.Name(),
		cmd.Price(),
		cmd.Description(),
	)
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

	if err = uow.MenuItemRepository().Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
