package models

import "time"

// Order is immutable once created.
type Order struct {
	ID         string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID     string    `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	TotalCents int64     `gorm:"column:total_cents;type:bigint;not null" json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem freezes the purchase price independent of the live product price.
type OrderItem struct {
	ID                  string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	OrderID             string `gorm:"column:order_id;type:uuid;not null;index" json:"order_id"`
	ProductID           string `gorm:"column:product_id;type:uuid;not null" json:"product_id"`
	Quantity            int    `gorm:"column:quantity;not null;default:1" json:"quantity"`
	PriceAtPurchaseCent int64  `gorm:"column:price_at_purchase_cents;type:bigint;not null" json:"price_at_purchase_cents"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
