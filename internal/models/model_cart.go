package models

import "time"

// Cart is the product staging area, one per user. Rows live until checkout,
// explicit removal or clearing.
type Cart struct {
	ID        string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Cart) TableName() string {
	return "carts"
}

type CartItem struct {
	ID        string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	CartID    string `gorm:"column:cart_id;type:uuid;not null;index" json:"cart_id"`
	ProductID string `gorm:"column:product_id;type:uuid;not null" json:"product_id"`
	Quantity  int    `gorm:"column:quantity;not null;default:1" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
