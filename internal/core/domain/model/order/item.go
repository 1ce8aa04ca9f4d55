package order

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a line of an order. The menu item's name and unit price are copied
// at order time, not referenced live, so later menu edits never change
// historical orders.
type Item struct {
	id           kernel.ID
	orderID      kernel.ID
	menuItemName string
	unitPrice    float64
	quantity     int

	isConstructed bool
}

// NewItem creates an order line with a snapshot of a menu item's name and price.
func NewItem(menuItemName string, unitPrice float64, quantity int) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setMenuItemName(menuItemName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an order line from persistence.
func RestoreItem(id, orderID kernel.ID, menuItemName string, unitPrice float64, quantity int) (*Item, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	item, err := NewItem(menuItemName, unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	item.id = id
	item.orderID = orderID
	return item, nil
}

// Validate ensures the Item was built through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// AssignIDs records store-generated identifiers after the owning order is created.
func (i *Item) AssignIDs(id, orderID kernel.ID) error {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return err
	}
	i.id = id
	i.orderID = orderID
	return nil
}

// ID returns the line identifier, zero until persisted.
func (i *Item) ID() kernel.ID {
	return i.id
}

// OrderID returns the owning order's identifier.
func (i *Item) OrderID() kernel.ID {
	return i.orderID
}

// MenuItemName returns the snapshotted menu item name.
func (i *Item) MenuItemName() string {
	return i.menuItemName
}

// UnitPrice returns the snapshotted price per unit.
func (i *Item) UnitPrice() float64 {
	return i.unitPrice
}

// Quantity returns how many units were ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) setMenuItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	i.menuItemName = strings.TrimSpace(name)
	return nil
}

func (i *Item) setUnitPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("unit price")
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	i.quantity = quantity
	return nil
}
