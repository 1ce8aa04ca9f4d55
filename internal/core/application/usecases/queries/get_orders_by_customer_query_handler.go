package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// GetOrdersByCustomerQueryHandler lists a customer's orders newest first.
//
// Example:
//
//	handler := NewGetOrdersByCustomerQueryHandler(db, logger)
//	query, _ := NewGetOrdersByCustomerQuery(customerID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders on record\n", len(orders))
type GetOrdersByCustomerQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetOrdersByCustomerQueryHandler creates a handler for customer order listings.
func NewGetOrdersByCustomerQueryHandler(db *gorm.DB, logger *slog.Logger) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{
		db:     db,
		logger: logger.With(slog.String("component", "get_orders_by_customer_query")),
	}
}

// Handle executes the query. A storage failure is logged and degrades to an
// empty listing.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID()).Rows()
	if err != nil {
		h.logger.ErrorContext(ctx, "orders by customer query failed", slog.Any("error", err))
		return []OrderResponse{}, nil
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "orders by customer scan failed", slog.Any("error", err))
		return []OrderResponse{}, nil
	}

	return orders, nil
}
