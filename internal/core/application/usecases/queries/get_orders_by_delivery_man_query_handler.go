package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// GetOrdersByDeliveryManQueryHandler lists the orders assigned to one
// delivery man, oldest first.
type GetOrdersByDeliveryManQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetOrdersByDeliveryManQueryHandler creates a handler for delivery man order listings.
func NewGetOrdersByDeliveryManQueryHandler(db *gorm.DB, logger *slog.Logger) GetOrdersByDeliveryManQueryHandler {
	return GetOrdersByDeliveryManQueryHandler{
		db:     db,
		logger: logger.With(slog.String("component", "get_orders_by_delivery_man_query")),
	}
}

// Handle executes the query. A storage failure is logged and degrades to an
// empty listing.
func (h GetOrdersByDeliveryManQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByDeliveryManQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders
		WHERE delivery_man_id = ?
		ORDER BY created_at
	`, query.DeliveryManID()).Rows()
	if err != nil {
		h.logger.ErrorContext(ctx, "orders by delivery man query failed", slog.Any("error", err))
		return []OrderResponse{}, nil
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "orders by delivery man scan failed", slog.Any("error", err))
		return []OrderResponse{}, nil
	}

	return orders, nil
}
