package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// GetOrderItemsQueryHandler lists one order's snapshot lines.
type GetOrderItemsQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetOrderItemsQueryHandler creates a handler for order line listings.
func NewGetOrderItemsQueryHandler(db *gorm.DB, logger *slog.Logger) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{
		db:     db,
		logger: logger.With(slog.String("component", "get_order_items_query")),
	}
}

// Handle executes the query. A storage failure is logged and degrades to an
// empty listing.
func (h GetOrderItemsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderItemsQuery,
) ([]OrderItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			menu_item_name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID()).Rows()
	if err != nil {
		h.logger.ErrorContext(ctx, "order items query failed", slog.Any("error", err))
		return items, nil
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderItemResponse

		err = rows.Scan(
			&resp.ID,
			&resp.OrderID,
			&resp.MenuItemName,
			&resp.UnitPrice,
			&resp.Quantity,
		)
		if err != nil {
			h.logger.ErrorContext(ctx, "order items scan failed", slog.Any("error", err))
			return []OrderItemResponse{}, nil
		}
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		h.logger.ErrorContext(ctx, "order items scan failed", slog.Any("error", err))
		return []OrderItemResponse{}, nil
	}

	return items, nil
}
