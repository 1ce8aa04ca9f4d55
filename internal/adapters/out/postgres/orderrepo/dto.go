// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order row owns its item rows: adding an order writes
// both in one call, and the lines are immutable snapshots afterwards.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// A null delivery man reference means the order is unassigned; id 0 is never
// stored.
type OrderDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID      int64  `gorm:"index"`
	RestaurantID    int64  `gorm:"index"`
	DeliveryManID   *int64 `gorm:"index"`
	Status          string `gorm:"size:32"`
	CreatedAt       time.Time
	DeliveryAddress string
	Comment         string
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one snapshot line of an order.
type OrderItemDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	OrderID      int64 `gorm:"index"`
	MenuItemName string
	UnitPrice    float64
	Quantity     int
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation,
// without item lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	var deliveryManID *int64
	if id := aggregate.DeliveryManID(); id != nil {
		raw := id.Int64()
		deliveryManID = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Int64(),
		CustomerID:      aggregate.CustomerID().Int64(),
		RestaurantID:    aggregate.RestaurantID().Int64(),
		DeliveryManID:   deliveryManID,
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Comment:         aggregate.Comment(),
	}
}

// itemFromDomain converts one order line to its database representation.
func itemFromDomain(orderID kernel.ID, item *order.Item) OrderItemDTO {
	return OrderItemDTO{
		ID:           item.ID().Int64(),
		OrderID:      orderID.Int64(),
		MenuItemName: item.MenuItemName(),
		UnitPrice:    item.UnitPrice(),
		Quantity:     item.Quantity(),
	}
}

// toDomain converts a database DTO to an order aggregate via RestoreOrder.
// Item lines are not loaded; status transitions never need them.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var deliveryManID *kernel.ID
	if dto.DeliveryManID != nil {
		id := kernel.ID(*dto.DeliveryManID)
		deliveryManID = &id
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.CustomerID),
		kernel.ID(dto.RestaurantID),
		deliveryManID,
		status,
		dto.CreatedAt,
		dto.DeliveryAddress,
		dto.Comment,
	)
}
