// Package menu contains the menu item model. Menu management is validation
// only: there is no state machine, and items pass straight to the Entity
// Store once their bounds are checked.
package menu

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const maxPrice = 1000.0

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("menu Item must be created via NewItem or RestoreItem")

// Item is a dish offered by a restaurant organization. The price bound is a
// simple sanity check, not a pricing engine: it must be greater than zero and
// at most 1000.
type Item struct {
	id           kernel.ID
	restaurantID kernel.ID
	name         string
	price        float64
	description  string

	isConstructed bool
}

// NewItem creates a not-yet-persisted menu Item.
func NewItem(restaurantID kernel.ID, name string, price float64, description string) (*Item, error) {
	item := &Item{
		description:   strings.TrimSpace(description),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a menu Item from persistence.
func RestoreItem(id, restaurantID kernel.ID, name string, price float64, description string) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	item, err := NewItem(restaurantID, name, price, description)
	if err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

// Validate ensures the Item was built through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier after a successful create.
func (i *Item) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// ID returns the item identifier, zero until persisted.
func (i *Item) ID() kernel.ID {
	return i.id
}

// RestaurantID returns the owning restaurant organization's identifier.
func (i *Item) RestaurantID() kernel.ID {
	return i.restaurantID
}

// Name returns the dish name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the price per unit.
func (i *Item) Price() float64 {
	return i.price
}

// Description returns the free-text description.
func (i *Item) Description() string {
	return i.description
}

func (i *Item) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	i.restaurantID = restaurantID
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = strings.TrimSpace(name)
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price <= 0 || price > maxPrice {
		return errs.NewValueIsOutOfRangeError("price", price, "more than 0", maxPrice)
	}
	i.price = price
	return nil
}
