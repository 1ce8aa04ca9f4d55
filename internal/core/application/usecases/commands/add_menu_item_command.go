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

// ErrAddMenuItemCommandIsNotConstructed is returned when an AddMenuItemCommand
// was not created via NewAddMenuItemCommand.
var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand carries the data for a new menu item.
type AddMenuItemCommand struct {
	restaurantID kernel.ID
	name         string
	price        float64
	description  string

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
func NewAddMenuItemCommand(
	restaurantID kernel.ID,
	name string,
	price float64,
	description string,
) (AddMenuItemCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return AddMenuItemCommand{}, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	if name == "" {
		return AddMenuItemCommand{}, errs.NewValueIsRequiredError("name")
	}

	return AddMenuItemCommand{
		restaurantID: restaurantID,
		name:         name,
		price:        price,
		description:  description,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// RestaurantID returns the owning restaurant organization's identifier.
func (c AddMenuItemCommand) RestaurantID() kernel.ID { return c.restaurantID }

// Name returns the dish name.
func (c AddMenuItemCommand) Name() string { return c.name }

// Price returns the price per unit.
func (c AddMenuItemCommand) Price() float64 { return c.price }

// Description returns the free-text description.
func (c AddMenuItemCommand) Description() string { return c.description }

// AddMenuItemCommandHandler adds menu items. Menu mutations require a staff
// role (Manager, EnterpriseAdmin or SystemAdmin); the same gate applies to
// every menu mutation rather than being left to the transport layer.
type AddMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for adding menu items.
func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle processes the menu item creation command and returns the stored item
// with its assigned identifier.
func (h AddMenuItemCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd AddMenuItemCommand,
) (*menu.Item, error) {
	const action = "add menu item"

	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireStaff(actor, action); err != nil {
		return nil, err
	}

	item, err := menu.NewItem(cmd.RestaurantID(), cmd.Name(), cmd.Price(), cmd.Description())
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

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
