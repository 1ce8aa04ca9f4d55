// Package userrepo provides data transfer objects and mapping functions for
// user persistence, converting between the account aggregate and its
// relational representation.
package userrepo

import (
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// UserDTO represents the database structure for persisting user aggregates.
// The username carries a unique index backing the case-insensitive uniqueness
// rule; lookups lower-case both sides. A null organization reference means
// the user has no tenant.
type UserDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"uniqueIndex;size:50"`
	Credential     string
	Role           string `gorm:"size:32"`
	Name           string
	Phone          string
	Email          string
	OrganizationID *int64 `gorm:"index"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(user *account.User) UserDTO {
	var organizationID *int64
	if !user.OrganizationID().IsZero() {
		raw := user.OrganizationID().Int64()
		organizationID = &raw
	}

	return UserDTO{
		ID:             user.ID().Int64(),
		Username:       user.Username(),
		Credential:     user.Credential(),
		Role:           user.Role().String(),
		Name:           user.Name(),
		Phone:          user.Phone().String(),
		Email:          user.Email().String(),
		OrganizationID: organizationID,
	}
}

// toDomain converts a database DTO to a user aggregate via RestoreUser.
func toDomain(dto UserDTO) (*account.User, error) {
	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	var organizationID kernel.ID
	if dto.OrganizationID != nil {
		organizationID = kernel.ID(*dto.OrganizationID)
	}

	return account.RestoreUser(
		kernel.ID(dto.ID),
		dto.Username,
		dto.Credential,
		role,
		dto.Name,
		phone,
		email,
		organizationID,
	)
}
