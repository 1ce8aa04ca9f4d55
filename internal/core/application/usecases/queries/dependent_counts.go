package queries

import (
	"context"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/kernel"
)

// DependentCounts answers "does anything still reference this?" questions for
// the delete handlers. Unlike the listing queries, a storage failure here
// propagates: a delete must not proceed on an unknown dependent count.
type DependentCounts struct {
	db *gorm.DB
}

// NewDependentCounts creates a counter over the given database.
func NewDependentCounts(db *gorm.DB) DependentCounts {
	return DependentCounts{db: db}
}

// CountOrganizationsByEnterprise reports how many organizations belong to an
// enterprise.
func (c DependentCounts) CountOrganizationsByEnterprise(
	ctx context.Context,
	enterpriseID kernel.ID,
) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM organizations WHERE enterprise_id = ?
	`, enterpriseID).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountUsersByOrganization reports how many users belong to an organization.
func (c DependentCounts) CountUsersByOrganization(
	ctx context.Context,
	organizationID kernel.ID,
) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM users WHERE organization_id = ?
	`, organizationID).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
