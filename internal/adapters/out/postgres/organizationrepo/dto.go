// Package organizationrepo provides data transfer objects and mapping
// functions for organization persistence. The enterprise reference is the
// backbone of tenant-scope resolution, so it carries an index.
package organizationrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tenant"
)

// OrganizationDTO represents the database structure for persisting organizations.
type OrganizationDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"index"`
	Kind         string `gorm:"size:32"`
	EnterpriseID int64  `gorm:"index"`
}

// TableName specifies the database table name for organization entities.
func (OrganizationDTO) TableName() string {
	return "organizations"
}

// fromDomain converts an organization aggregate to its database representation.
func fromDomain(organization *tenant.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:           organization.ID().Int64(),
		Name:         organization.Name(),
		Kind:         organization.Kind(),
		EnterpriseID: organization.EnterpriseID().Int64(),
	}
}

// toDomain converts a database DTO to an organization aggregate.
func toDomain(dto OrganizationDTO) (*tenant.Organization, error) {
	return tenant.RestoreOrganization(
		kernel.ID(dto.ID),
		dto.Name,
		dto.Kind,
		kernel.ID(dto.EnterpriseID),
	)
}
