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

// ErrUpdateOrderStatusCommandIsNotConstructed is returned when an
// UpdateOrderStatusCommand was not created via NewUpdateOrderStatusCommand.
var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand advances an order along the fulfillment chain.
// A zero deliveryManID means "no assignment change"; the aggregate treats it
// as nil.
type UpdateOrderStatusCommand struct {
	orderID       kernel.ID
	newStatus     order.Status
	deliveryManID kernel.ID

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to advance an order's status.
func NewUpdateOrderStatusCommand(
	orderID kernel.ID,
	newStatus order.Status,
	deliveryManID kernel.ID,
) (UpdateOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := newStatus.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID:       orderID,
		newStatus:     newStatus,
		deliveryManID: deliveryManID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c UpdateOrderStatusCommand) OrderID() kernel.ID { return c.orderID }

// NewStatus returns the requested next status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status { return c.newStatus }

// DeliveryManID returns the delivery man to assign, zero for no change.
func (c UpdateOrderStatusCommand) DeliveryManID() kernel.ID { return c.deliveryManID }

// UpdateOrderStatusCommandHandler advances orders through fulfillment.
// Transitions must follow the chain one step at a time; arbitrary jumps are
// rejected by the aggregate.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the order status update command.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd UpdateOrderStatusCommand,
) error {
	const action = "update order status"

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

	orders := uow.OrderRepository()

	aggregate, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var deliveryManID *kernel.ID
	if !cmd.DeliveryManID().IsZero() {
		id := cmd.DeliveryManID()
		deliveryManID = &id
	}

	if err = aggregate.Progress(cmd.NewStatus(), deliveryManID); err != nil {
		return err
	}

	if err = orders.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
