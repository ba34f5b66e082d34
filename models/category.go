package models

import "time"

type Category struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Name      Translations `gorm:"type:text;serializer:json" json:"name"`
	Image     string       `json:"image"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
	Products  []Product    `gorm:"many2many:category_product" json:"products,omitempty"`
}
