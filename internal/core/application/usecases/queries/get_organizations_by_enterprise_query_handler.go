package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// GetOrganizationsByEnterpriseQueryHandler lists one enterprise's
// organizations alphabetically.
type GetOrganizationsByEnterpriseQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetOrganizationsByEnterpriseQueryHandler creates a handler for organization listings.
func NewGetOrganizationsByEnterpriseQueryHandler(
	db *gorm.DB,
	logger *slog.Logger,
) GetOrganizationsByEnterpriseQueryHandler {
	return GetOrganizationsByEnterpriseQueryHandler{
		db:     db,
		logger: logger.With(slog.String("component", "get_organizations_by_enterprise_query")),
	}
}

// Handle executes the query. A storage failure is logged and degrades to an
// empty listing.
func (h GetOrganizationsByEnterpriseQueryHandler) Handle(
	ctx context.Context,
	query GetOrganizationsByEnterpriseQuery,
) ([]OrganizationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	organizations := make([]OrganizationResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			kind,
			enterprise_id
		FROM organizations
		WHERE enterprise_id = ?
		ORDER BY name
	`, query.EnterpriseID()).Rows()
	if err != nil {
		h.logger.ErrorContext(ctx, "organizations query failed", slog.Any("error", err))
		return organizations, nil
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrganizationResponse

		if err = rows.Scan(&resp.ID, &resp.Name, &resp.Kind, &resp.EnterpriseID); err != nil {
			h.logger.ErrorContext(ctx, "organizations scan failed", slog.Any("error", err))
			return []OrganizationResponse{}, nil
		}
		organizations = append(organizations, resp)
	}

	if err = rows.Err(); err != nil {
		h.logger.ErrorContext(ctx, "organizations scan failed", slog.Any("error", err))
		return []OrganizationResponse{}, nil
	}

	return organizations, nil
}
