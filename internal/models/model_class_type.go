package models

import "time"

// ClassType is reference data describing what a session teaches (Yoga, HIIT...).
type ClassType struct {
	ID          string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ClassType) TableName() string {
	return "class_types"
}
