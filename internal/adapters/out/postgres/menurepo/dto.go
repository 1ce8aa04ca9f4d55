// Package menurepo provides data transfer objects and mapping functions for
// menu item persistence.
package menurepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64 `gorm:"index"`
	Name         string
	Price        float64
	Description  string
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item aggregate to its database representation.
func fromDomain(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Int64(),
		RestaurantID: item.RestaurantID().Int64(),
		Name:         item.Name(),
		Price:        item.Price(),
		Description:  item.Description(),
	}
}

// toDomain converts a database DTO to a menu item aggregate.
func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	return menu.RestoreItem(
		kernel.ID(dto.ID),
		kernel.ID(dto.RestaurantID),
		dto.Name,
		dto.Price,
		dto.Description,
	)
}
