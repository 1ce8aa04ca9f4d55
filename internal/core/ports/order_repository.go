package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Adding an order persists its item lines in the same call.
type OrderRepository interface {
	// Add persists a new order with its snapshot item lines and assigns
	// the store-generated IDs back onto the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order (status, delivery man).
	// Item lines are immutable snapshots and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier, without item lines.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
}

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	// Add persists a new menu item and assigns the store-generated ID
	// back onto the aggregate.
	Add(ctx context.Context, aggregate *menu.Item) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, aggregate *menu.Item) error

	// Get retrieves a menu item by its identifier.
	Get(ctx context.Context, id kernel.ID) (*menu.Item, error)

	// Delete removes a menu item by its identifier. Order lines keep their
	// snapshotted copies of the item's name and price.
	Delete(ctx context.Context, id kernel.ID) error
}
