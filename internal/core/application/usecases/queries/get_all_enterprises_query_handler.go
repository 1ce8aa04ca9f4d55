package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// GetAllEnterprisesQueryHandler lists the enterprise directory alphabetically.
type GetAllEnterprisesQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetAllEnterprisesQueryHandler creates a handler for enterprise listings.
func NewGetAllEnterprisesQueryHandler(db *gorm.DB, logger *slog.Logger) GetAllEnterprisesQueryHandler {
	return GetAllEnterprisesQueryHandler{
		db:     db,
		logger: logger.With(slog.String("component", "get_all_enterprises_query")),
	}
}

// Handle executes the query. A storage failure is logged and degrades to an
// empty listing.
func (h GetAllEnterprisesQueryHandler) Handle(
	ctx context.Context,
	query GetAllEnterprisesQuery,
) ([]EnterpriseResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	enterprises := make([]EnterpriseResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			kind
		FROM enterprises
		ORDER BY name
	`).Rows()
	if err != nil {
		h.logger.ErrorContext(ctx, "enterprises query failed", slog.Any("error", err))
		return enterprises, nil
	}
	defer rows.Close()

	for rows.Next() {
		var resp EnterpriseResponse

		if err = rows.Scan(&resp.ID, &resp.Name, &resp.Kind); err != nil {
			h.logger.ErrorContext(ctx, "enterprises scan failed", slog.Any("error", err))
			return []EnterpriseResponse{}, nil
		}
		enterprises = append(enterprises, resp)
	}

	if err = rows.Err(); err != nil {
		h.logger.ErrorContext(ctx, "enterprises scan failed", slog.Any("error", err))
		return []EnterpriseResponse{}, nil
	}

	return enterprises, nil
}
