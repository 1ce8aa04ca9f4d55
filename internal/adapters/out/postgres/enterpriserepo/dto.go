// Package enterpriserepo provides data transfer objects and mapping functions
// for enterprise persistence.
package enterpriserepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tenant"
)

// EnterpriseDTO represents the database structure for persisting enterprises.
type EnterpriseDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"index"`
	Kind string `gorm:"size:32"`
}

// TableName specifies the database table name for enterprise entities.
func (EnterpriseDTO) TableName() string {
	return "enterprises"
}

// fromDomain converts an enterprise aggregate to its database representation.
func fromDomain(enterprise *tenant.Enterprise) EnterpriseDTO {
	return EnterpriseDTO{
		ID:   enterprise.ID().Int64(),
		Name: enterprise.Name(),
		Kind: enterprise.Kind(),
	}
}

// toDomain converts a database DTO to an enterprise aggregate.
func toDomain(dto EnterpriseDTO) (*tenant.Enterprise, error) {
	return tenant.RestoreEnterprise(kernel.ID(dto.ID), dto.Name, dto.Kind)
}
