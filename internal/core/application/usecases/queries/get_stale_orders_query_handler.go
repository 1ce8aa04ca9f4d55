package queries

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/order"
)

// GetStaleOrdersQueryHandler lists orders stuck in the newly-placed state.
// Used by the stale-order watch job for operational visibility; nobody is
// acting on these orders until a restaurant accepts them.
type GetStaleOrdersQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetStaleOrdersQueryHandler creates a handler for stale order listings.
func NewGetStaleOrdersQueryHandler(db *gorm.DB, logger *slog.Logger) GetStaleOrdersQueryHandler {
	return GetStaleOrdersQueryHandler{
		db:     db,
		logger: logger.With(slog.String("component", "get_stale_orders_query")),
	}
}

// Handle executes the query. A storage failure is logged and degrades to an
// empty listing.
func (h GetStaleOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStaleOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-query.OlderThan())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders
		WHERE status = ? AND created_at < ?
		ORDER BY created_at
	`, order.StatusPlaced.String(), cutoff).Rows()
	if err != nil {
		h.logger.ErrorContext(ctx, "stale orders query failed", slog.Any("error", err))
		return []OrderResponse{}, nil
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "stale orders scan failed", slog.Any("error", err))
		return []OrderResponse{}, nil
	}

	return orders, nil
}
