package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/pkg/errs"
)

// GetAllWorkRequestsQueryHandler lists every work request, newest first.
// System administrators only.
type GetAllWorkRequestsQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetAllWorkRequestsQueryHandler creates a handler for the global request listing.
func NewGetAllWorkRequestsQueryHandler(db *gorm.DB, logger *slog.Logger) GetAllWorkRequestsQueryHandler {
	return GetAllWorkRequestsQueryHandler{
		db:     db,
		logger: logger.With(slog.String("component", "get_all_work_requests_query")),
	}
}

// Handle executes the query for the given actor.
func (h GetAllWorkRequestsQueryHandler) Handle(
	ctx context.Context,
	actor *account.User,
	query GetAllWorkRequestsQuery,
) ([]WorkRequestResponse, error) {
	const action = "list all work requests"

	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := actor.Validate(); err != nil {
		return nil, errs.NewUnauthorizedErrorWithCause(action, err)
	}
	if actor.Role() != account.RoleSystemAdmin {
		return nil, errs.NewUnauthorizedError(action)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + workRequestSelectColumns + `
		FROM work_requests
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		h.logger.ErrorContext(ctx, "all work requests query failed", slog.Any("error", err))
		return []WorkRequestResponse{}, nil
	}
	defer rows.Close()

	requests, err := scanWorkRequestRows(rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "all work requests scan failed", slog.Any("error", err))
		return []WorkRequestResponse{}, nil
	}

	return requests, nil
}
