package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrdersByRestaurantQueryIsNotConstructed = errors.New(
	"GetOrdersByRestaurantQuery must be created via NewGetOrdersByRestaurantQuery constructor",
)

// GetOrdersByRestaurantQuery retrieves the orders addressed to one restaurant
// organization, the kitchen's work queue.
type GetOrdersByRestaurantQuery struct {
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrdersByRestaurantQuery creates a query for one restaurant's orders.
func NewGetOrdersByRestaurantQuery(restaurantID kernel.ID) (GetOrdersByRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetOrdersByRestaurantQuery{}, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	return GetOrdersByRestaurantQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are requested.
func (q GetOrdersByRestaurantQuery) RestaurantID() kernel.ID { return q.restaurantID }
