package models

import "gorm.io/gorm"

// Menu represents a single purchasable item in the catalog.
type Menu struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Price      float64 `json:"price" validate:"gte=0"`
	Category   string  `json:"category" gorm:"type:varchar(100)" validate:"required"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// MenuUpdate carries a partial update for a menu record. Nil fields are
// left untouched.
type MenuUpdate struct {
	Name     *string
	Price    *float64
	Category *string
}
