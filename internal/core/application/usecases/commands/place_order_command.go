package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrPlaceOrderCommandIsNotConstructed is returned when a PlaceOrderCommand
// was not created via NewPlaceOrderCommand.
var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// OrderLine pairs a menu item with a requested quantity. The handler resolves
// the menu item and snapshots its name and price into the order.
type OrderLine struct {
	MenuItemID kernel.ID
	Quantity   int
}

// PlaceOrderCommand carries the data for placing a new order.
type PlaceOrderCommand struct {
	customerID      kernel.ID
	restaurantID    kernel.ID
	deliveryAddress string
	comment         string
	lines           []OrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
func NewPlaceOrderCommand(
	customerID kernel.ID,
	restaurantID kernel.ID,
	deliveryAddress string,
	comment string,
	lines []OrderLine,
) (PlaceOrderCommand, error) {
	if err := customerID.Validate(); err != nil {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if err := restaurantID.Validate(); err != nil {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	if deliveryAddress == "" {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("deliveryAddress")
	}
	for _, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return PlaceOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("menuItemId", err)
		}
		if line.Quantity < 1 {
			return PlaceOrderCommand{}, errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, "unbounded")
		}
	}

	return PlaceOrderCommand{
		customerID:      customerID,
		restaurantID:    restaurantID,
		deliveryAddress: deliveryAddress,
		comment:         comment,
		lines:           lines,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.ID { return c.customerID }

// RestaurantID returns the restaurant organization's identifier.
func (c PlaceOrderCommand) RestaurantID() kernel.ID { return c.restaurantID }

// DeliveryAddress returns the requested delivery address.
func (c PlaceOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// Comment returns the customer's free-text comment.
func (c PlaceOrderCommand) Comment() string { return c.comment }

// Lines returns the requested menu items and quantities.
func (c PlaceOrderCommand) Lines() []OrderLine { return c.lines }

// PlaceOrderCommandHandler creates orders. Each order line snapshots the menu
// item's current name and price, so later menu edits never change the order.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the order placement command and returns the stored order
// with its assigned identifier and Placed status.
func (h PlaceOrderCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd PlaceOrderCommand,
) (*order.Order, error) {
	const action = "place order"

	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireActor(actor, action); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuItems := uow.MenuItemRepository()

	items := make([]*order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		menuItem, err := menuItems.Get(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem.RestaurantID() != cmd.RestaurantID() {
			return nil, errs.NewValueIsInvalidError("menuItemId")
		}

		item, err := order.NewItem(menuItem.Name(), menuItem.Price(), line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	placed, err := order.NewOrder(
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.DeliveryAddress(),
		cmd.Comment(),
		items,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
