package queries

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/kernel"
)

// WorkRequestResponse represents one inter-enterprise request row. The
// related order reference is zero when the request concerns no specific order.
type WorkRequestResponse struct {
	ID                   kernel.ID
	Kind                 string
	SenderEnterpriseID   kernel.ID
	ReceiverEnterpriseID kernel.ID
	RelatedOrderID       kernel.ID
	Status               string
	Message              string
	CreatedAt            time.Time
}

const workRequestSelectColumns = `
		id,
		kind,
		sender_enterprise_id,
		receiver_enterprise_id,
		related_order_id,
		status,
		message,
		created_at
`

// scanWorkRequestRows drains a result set of work request rows into responses.
func scanWorkRequestRows(rows *sql.Rows) ([]WorkRequestResponse, error) {
	requests := make([]WorkRequestResponse, 0)

	for rows.Next() {
		var resp WorkRequestResponse
		var relatedOrderID sql.NullInt64

		err := rows.Scan(
			&resp.ID,
			&resp.Kind,
			&resp.SenderEnterpriseID,
			&resp.ReceiverEnterpriseID,
			&relatedOrderID,
			&resp.Status,
			&resp.Message,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if relatedOrderID.Valid {
			resp.RelatedOrderID = kernel.ID(relatedOrderID.Int64)
		}
		requests = append(requests, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// resolveActorScope follows an organization reference to its enterprise on
// the read side. Absent references, vanished organizations and failed lookups
// all yield "no tenant" (zero), so a broken reference can only ever deny.
func resolveActorScope(
	ctx context.Context,
	db *gorm.DB,
	logger *slog.Logger,
	organizationID kernel.ID,
) kernel.ID {
	if organizationID.IsZero() {
		return 0
	}

	var enterpriseID int64
	err := db.WithContext(ctx).Raw(`
		SELECT enterprise_id FROM organizations WHERE id = ?
	`, organizationID).Scan(&enterpriseID).Error
	if err != nil {
		logger.ErrorContext(ctx, "tenant scope lookup failed", slog.Any("error", err))
		return 0
	}

	return kernel.ID(enterpriseID)
}
