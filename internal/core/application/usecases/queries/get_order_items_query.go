package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderItemsQueryIsNotConstructed = errors.New(
	"GetOrderItemsQuery must be created via NewGetOrderItemsQuery constructor",
)

// GetOrderItemsQuery retrieves the snapshot lines of one order.
type GetOrderItemsQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderItemsQuery creates a query for one order's lines.
func NewGetOrderItemsQuery(orderID kernel.ID) (GetOrderItemsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderItemsQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return GetOrderItemsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemsQueryIsNotConstructed)
}

// OrderID returns the order whose lines are requested.
func (q GetOrderItemsQuery) OrderID() kernel.ID { return q.orderID }

// OrderItemResponse represents one snapshot line of an order. Name and price
// are the values copied at order time, not the menu's current ones.
type OrderItemResponse struct {
	ID           kernel.ID
	OrderID      kernel.ID
	MenuItemName string
	UnitPrice    float64
	Quantity     int
}
