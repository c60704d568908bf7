package models

import "time"

// Notification is a persisted user-facing message with an optional deep link.
// Writes are best-effort side effects, never part of the owning transaction.
type Notification struct {
	ID        string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Link      string    `gorm:"column:link;type:varchar(255)" json:"link"`
	IsRead    bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
