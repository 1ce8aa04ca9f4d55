package queries

import (
	"context"
	"database/sql"
	"log/slog"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// GetAllUsersQueryHandler lists user accounts for administration screens.
// Staff only. The credential column is never selected.
type GetAllUsersQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetAllUsersQueryHandler creates a handler for user listings.
func NewGetAllUsersQueryHandler(db *gorm.DB, logger *slog.Logger) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{
		db:     db,
		logger: logger.With(slog.String("component", "get_all_users_query")),
	}
}

// Handle executes the query for the given actor.
func (h GetAllUsersQueryHandler) Handle(
	ctx context.Context,
	actor *account.User,
	query GetAllUsersQuery,
) ([]UserResponse, error) {
	const action = "list users"

	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := actor.Validate(); err != nil {
		return nil, errs.NewUnauthorizedErrorWithCause(action, err)
	}
	if !actor.Role().IsStaff() {
		return nil, errs.NewUnauthorizedError(action)
	}

	users := make([]UserResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			role,
			name,
			phone,
			email,
			organization_id
		FROM users
		ORDER BY username
	`).Rows()
	if err != nil {
		h.logger.ErrorContext(ctx, "users query failed", slog.Any("error", err))
		return users, nil
	}
	defer rows.Close()

	for rows.Next() {
		var resp UserResponse
		var organizationID sql.NullInt64

		err = rows.Scan(
			&resp.ID,
			&resp.Username,
			&resp.Role,
			&resp.Name,
			&resp.Phone,
			&resp.Email,
			&organizationID,
		)
		if err != nil {
			h.logger.ErrorContext(ctx, "users scan failed", slog.Any("error", err))
			return []UserResponse{}, nil
		}

		if organizationID.Valid {
			resp.OrganizationID = kernel.ID(organizationID.Int64)
		}
		users = append(users, resp)
	}

	if err = rows.Err(); err != nil {
		h.logger.ErrorContext(ctx, "users scan failed", slog.Any("error", err))
		return []UserResponse{}, nil
	}

	return users, nil
}
