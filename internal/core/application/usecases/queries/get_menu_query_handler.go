package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// GetMenuQueryHandler lists a restaurant's menu items alphabetically.
//
// Example:
//
//	handler := NewGetMenuQueryHandler(db, logger)
//	query, _ := NewGetMenuQuery(restaurantID)
//
//	menu, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, dish := range menu {
//	    fmt.Printf("%s  %.2f\n", dish.Name, dish.Price)
//	}
type GetMenuQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetMenuQueryHandler creates a handler for menu listings.
func NewGetMenuQueryHandler(db *gorm.DB, logger *slog.Logger) GetMenuQueryHandler {
	return GetMenuQueryHandler{
		db:     db,
		logger: logger.With(slog.String("component", "get_menu_query")),
	}
}

// Handle executes the query. A storage failure is logged and degrades to an
// empty listing.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menu := make([]MenuItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			name,
			price,
			description
		FROM menu_items
		WHERE restaurant_id = ?
		ORDER BY name
	`, query.RestaurantID()).Rows()
	if err != nil {
		h.logger.ErrorContext(ctx, "menu query failed", slog.Any("error", err))
		return menu, nil
	}
	defer rows.Close()

	for rows.Next() {
		var resp MenuItemResponse

		err = rows.Scan(
			&resp.ID,
			&resp.RestaurantID,
			&resp.Name,
			&resp.Price,
			&resp.Description,
		)
		if err != nil {
			h.logger.ErrorContext(ctx, "menu scan failed", slog.Any("error", err))
			return []MenuItemResponse{}, nil
		}
		menu = append(menu, resp)
	}

	if err = rows.Err(); err != nil {
		h.logger.ErrorContext(ctx, "menu scan failed", slog.Any("error", err))
		return []MenuItemResponse{}, nil
	}

	return menu, nil
}
