package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// GetOrdersByRestaurantQueryHandler lists one restaurant's incoming orders,
// oldest first so the kitchen works the queue in arrival order.
type GetOrdersByRestaurantQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetOrdersByRestaurantQueryHandler creates a handler for restaurant order listings.
func NewGetOrdersByRestaurantQueryHandler(db *gorm.DB, logger *slog.Logger) GetOrdersByRestaurantQueryHandler {
	return GetOrdersByRestaurantQueryHandler{
		db:     db,
		logger: logger.With(slog.String("component", "get_orders_by_restaurant_query")),
	}
}

// Handle executes the query. A storage failure is logged and degrades to an
// empty listing.
func (h GetOrdersByRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByRestaurantQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders
		WHERE restaurant_id = ?
		ORDER BY created_at
	`, query.RestaurantID()).Rows()
	if err != nil {
		h.logger.ErrorContext(ctx, "orders by restaurant query failed", slog.Any("error", err))
		return []OrderResponse{}, nil
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "orders by restaurant scan failed", slog.Any("error", err))
		return []OrderResponse{}, nil
	}

	return orders, nil
}
