package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves one restaurant organization's menu, the view a
// customer browses before placing an order.
type GetMenuQuery struct {
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for one restaurant's menu.
func NewGetMenuQuery(restaurantID kernel.ID) (GetMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetMenuQuery{}, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	return GetMenuQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu is requested.
func (q GetMenuQuery) RestaurantID() kernel.ID { return q.restaurantID }

// MenuItemResponse represents one dish on a restaurant's menu.
type MenuItemResponse struct {
	ID           kernel.ID
	RestaurantID kernel.ID
	Name         string
	Price        float64
	Description  string
}
