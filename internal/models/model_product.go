package models

import (
	"time"

	"gorm.io/datatypes"
)

type ProductCategory struct {
	ID   string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Name string `gorm:"column:name;type:varchar(100);not null;uniqueIndex" json:"name"`
	Slug string `gorm:"column:slug;type:varchar(255);not null;uniqueIndex" json:"slug"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}

// Product is a shop item. Inactive products stay referenced by past order
// items but are hidden from the catalog and rejected at checkout.
type Product struct {
	ID          string                      `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Name        string                      `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string                      `gorm:"column:description;type:text;not null" json:"description"`
	PriceCents  int64                       `gorm:"column:price_cents;type:bigint;not null" json:"price_cents"`
	Rating      float64                     `gorm:"column:rating;not null;default:0" json:"rating"`
	Images      datatypes.JSONSlice[string] `gorm:"column:images" json:"images"`
	CategoryID  string                      `gorm:"column:category_id;type:uuid;not null;index" json:"category_id"`
	IsActive    bool                        `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`

	Category *ProductCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
