package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        Translations    `gorm:"type:text;serializer:json" json:"name"`
	Description Translations    `gorm:"type:text;serializer:json" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2)" json:"price"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	Categories  []Category      `gorm:"many2many:category_product" json:"categories,omitempty"`
}

// ProductImage holds one storage key owned by a product. The image set is
// only ever replaced wholesale, never appended to through the API.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	Image     string `json:"image"`
}
