package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrdersByDeliveryManQueryIsNotConstructed = errors.New(
	"GetOrdersByDeliveryManQuery must be created via NewGetOrdersByDeliveryManQuery constructor",
)

// GetOrdersByDeliveryManQuery retrieves the orders assigned to one delivery
// man, the courier's route view.
type GetOrdersByDeliveryManQuery struct {
	deliveryManID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrdersByDeliveryManQuery creates a query for one delivery man's orders.
func NewGetOrdersByDeliveryManQuery(deliveryManID kernel.ID) (GetOrdersByDeliveryManQuery, error) {
	if err := deliveryManID.Validate(); err != nil {
		return GetOrdersByDeliveryManQuery{}, errs.NewValueIsRequiredErrorWithCause("deliveryManId", err)
	}
	return GetOrdersByDeliveryManQuery{deliveryManID: deliveryManID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByDeliveryManQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByDeliveryManQueryIsNotConstructed)
}

// DeliveryManID returns the delivery man whose orders are requested.
func (q GetOrdersByDeliveryManQuery) DeliveryManID() kernel.ID { return q.deliveryManID }
