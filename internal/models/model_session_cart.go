package models

import "time"

// SessionCart stages session selections before checkout, one per user.
type SessionCart struct {
	ID        string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (SessionCart) TableName() string {
	return "session_carts"
}

// SessionCartItem rows are invalidated lazily at read time when the session
// became full, inactive or time-lapsed.
type SessionCartItem struct {
	ID        string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	CartID    string    `gorm:"column:cart_id;type:uuid;not null;uniqueIndex:uniq_session_per_cart,priority:1" json:"cart_id"`
	SessionID string    `gorm:"column:session_id;type:uuid;not null;uniqueIndex:uniq_session_per_cart,priority:2" json:"session_id"`
	CreatedAt time.Time `json:"created_at"`

	Session *Session `gorm:"foreignKey:SessionID" json:"session,omitempty"`
}

func (SessionCartItem) TableName() string {
	return "session_cart_items"
}
