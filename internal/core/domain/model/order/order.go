package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const minDeliveryAddressLength = 10

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrDeliveryManRequired is returned when an order moves to OutForDelivery
	// without a delivery man assigned.
	ErrDeliveryManRequired = errors.New("order cannot go out for delivery without an assigned delivery man")
)

// Order is the aggregate root for order fulfillment. Its lifecycle is owned
// jointly: a Customer places it, a restaurant Manager accepts it and marks it
// ready, and a DeliveryMan takes it out and delivers it.
//
// Invariants:
//   - Customer and restaurant references are valid identifiers.
//   - The delivery address is trimmed and at least 10 characters.
//   - Status only ever advances one step along the fulfillment chain.
//   - A delivery man is assigned no later than the move to OutForDelivery,
//     and an unassigned delivery man is represented as nil, never as id 0.
type Order struct {
	id              kernel.ID
	customerID      kernel.ID
	restaurantID    kernel.ID
	deliveryManID   *kernel.ID
	status          Status
	createdAt       time.Time
	deliveryAddress string
	comment         string
	items           []*Item

	isConstructed bool
}

// NewOrder creates a not-yet-persisted Order in Placed status with the
// creation time defaulted to now. The items, if any, become the order's
// snapshot lines.
func NewOrder(
	customerID kernel.ID,
	restaurantID kernel.ID,
	deliveryAddress string,
	comment string,
	items []*Item,
) (*Order, error) {
	order := &Order{
		status:        StatusPlaced,
		createdAt:     time.Now(),
		comment:       strings.TrimSpace(comment),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDeliveryAddress(deliveryAddress),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Items are restored
// separately by the repository and attached via AttachItems.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	restaurantID kernel.ID,
	deliveryManID *kernel.ID,
	status Status,
	createdAt time.Time,
	deliveryAddress string,
	comment string,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if deliveryManID != nil {
		if err := deliveryManID.Validate(); err != nil {
			return nil, err
		}
	}

	order, err := NewOrder(customerID, restaurantID, deliveryAddress, comment, nil)
	if err != nil {
		return nil, err
	}

	order.id = id
	order.status = status
	order.createdAt = createdAt
	order.deliveryManID = deliveryManID
	return order, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier after a successful create
// and stamps it onto the order's item lines.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	for _, item := range o.items {
		item.orderID = id
	}
	return nil
}

// ID returns the order identifier, zero until persisted.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// RestaurantID returns the restaurant organization's identifier.
func (o *Order) RestaurantID() kernel.ID {
	return o.restaurantID
}

// DeliveryManID returns the assigned delivery man, or nil if unassigned.
func (o *Order) DeliveryManID() *kernel.ID {
	return o.deliveryManID
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveryAddress returns the trimmed delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Comment returns the customer's free-text comment.
func (o *Order) Comment() string {
	return o.comment
}

// Items returns the order's snapshot lines.
func (o *Order) Items() []*Item {
	return o.items
}

// AttachItems sets restored item lines on an order loaded from persistence.
func (o *Order) AttachItems(items []*Item) {
	o.items = items
}

// Progress advances the order one step along the fulfillment chain.
// A non-nil deliveryManID assigns (or reassigns) the delivery man as part of
// the same transition; passing nil keeps the current assignment. Entering
// OutForDelivery requires an assignment from either source.
func (o *Order) Progress(next Status, deliveryManID *kernel.ID) error {
	newStatus, err := o.status.ProgressTo(next)
	if err != nil {
		return err
	}

	if deliveryManID != nil {
		if err := deliveryManID.Validate(); err != nil {
			return err
		}
	}

	if newStatus == StatusOutForDelivery && deliveryManID == nil && o.deliveryManID == nil {
		return ErrDeliveryManRequired
	}

	o.status = newStatus
	if deliveryManID != nil {
		o.deliveryManID = deliveryManID
	}
	return nil
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if len(trimmed) < minDeliveryAddressLength {
		return errs.NewValueIsInvalidErrorWithCause("delivery address",
			fmt.Errorf("%d characters is too short for a complete address, need at least %d",
				len(trimmed), minDeliveryAddressLength))
	}
	o.deliveryAddress = trimmed
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
