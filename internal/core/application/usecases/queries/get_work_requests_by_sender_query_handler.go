package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// GetWorkRequestsBySenderQueryHandler lists an enterprise's outbox. Gated the
// same way as the inbox, against the sending enterprise: what an enterprise
// has asked of others is as much its business as what others ask of it.
type GetWorkRequestsBySenderQueryHandler struct {
	db         *gorm.DB
	authorizer services.Authorizer
	logger     *slog.Logger
}

// NewGetWorkRequestsBySenderQueryHandler creates a handler for outbox listings.
func NewGetWorkRequestsBySenderQueryHandler(
	db *gorm.DB,
	authorizer services.Authorizer,
	logger *slog.Logger,
) GetWorkRequestsBySenderQueryHandler {
	return GetWorkRequestsBySenderQueryHandler{
		db:         db,
		authorizer: authorizer,
		logger:     logger.With(slog.String("component", "get_work_requests_by_sender_query")),
	}
}

// Handle executes the query for the given actor.
func (h GetWorkRequestsBySenderQueryHandler) Handle(
	ctx context.Context,
	actor *account.User,
	query GetWorkRequestsBySenderQuery,
) ([]WorkRequestResponse, error) {
	const action = "list sent work requests"

	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := actor.Validate(); err != nil {
		return nil, errs.NewUnauthorizedErrorWithCause(action, err)
	}

	actorScope := resolveActorScope(ctx, h.db, h.logger, actor.OrganizationID())
	if err := h.authorizer.Authorize(actor.Role(), actorScope, query.SenderEnterpriseID(), action); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+workRequestSelectColumns+`
		FROM work_requests
		WHERE sender_enterprise_id = ?
		ORDER BY created_at DESC
	`, query.SenderEnterpriseID()).Rows()
	if err != nil {
		h.logger.ErrorContext(ctx, "work requests by sender query failed", slog.Any("error", err))
		return []WorkRequestResponse{}, nil
	}
	defer rows.Close()

	requests, err := scanWorkRequestRows(rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "work requests by sender scan failed", slog.Any("error", err))
		return []WorkRequestResponse{}, nil
	}

	return requests, nil
}
