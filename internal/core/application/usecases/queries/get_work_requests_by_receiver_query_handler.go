package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// GetWorkRequestsByReceiverQueryHandler lists an enterprise's inbox. The view
// is tenant-gated: only the receiving enterprise's admin or a system
// administrator may read it. An authorization failure propagates; a storage
// failure degrades to an empty listing.
type GetWorkRequestsByReceiverQueryHandler struct {
	db         *gorm.DB
	authorizer services.Authorizer
	logger     *slog.Logger
}

// NewGetWorkRequestsByReceiverQueryHandler creates a handler for inbox listings.
func NewGetWorkRequestsByReceiverQueryHandler(
	db *gorm.DB,
	authorizer services.Authorizer,
	logger *slog.Logger,
) GetWorkRequestsByReceiverQueryHandler {
	return GetWorkRequestsByReceiverQueryHandler{
		db:         db,
		authorizer: authorizer,
		logger:     logger.With(slog.String("component", "get_work_requests_by_receiver_query")),
	}
}

// Handle executes the query for the given actor.
func (h GetWorkRequestsByReceiverQueryHandler) Handle(
	ctx context.Context,
	actor *account.User,
	query GetWorkRequestsByReceiverQuery,
) ([]WorkRequestResponse, error) {
	const action = "list received work requests"

	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := actor.Validate(); err != nil {
		return nil, errs.NewUnauthorizedErrorWithCause(action, err)
	}

	actorScope := resolveActorScope(ctx, h.db, h.logger, actor.OrganizationID())
	if err := h.authorizer.Authorize(actor.Role(), actorScope, query.ReceiverEnterpriseID(), action); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+workRequestSelectColumns+`
		FROM work_requests
		WHERE receiver_enterprise_id = ?
		ORDER BY created_at DESC
	`, query.ReceiverEnterpriseID()).Rows()
	if err != nil {
		h.logger.ErrorContext(ctx, "work requests by receiver query failed", slog.Any("error", err))
		return []WorkRequestResponse{}, nil
	}
	defer rows.Close()

	requests, err := scanWorkRequestRows(rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "work requests by receiver scan failed", slog.Any("error", err))
		return []WorkRequestResponse{}, nil
	}

	return requests, nil
}
