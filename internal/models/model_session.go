package models

import (
	"time"

	"gorm.io/datatypes"
)

// Session is a trainer-authored class instance with a fixed time window and
// capacity. Time windows are half-open [start_time, end_time); CurrentBookings
// is a denormalized count of confirmed bookings and only ever changes inside
// the transaction that creates or cancels the booking.
type Session struct {
	ID              string         `gorm:"column:id;type:uuid;primary_key" json:"id"`
	TrainerID       string         `gorm:"column:trainer_id;type:uuid;not null;index:idx_trainer_date,priority:1" json:"trainer_id"`
	ClassTypeID     string         `gorm:"column:class_type_id;type:uuid;not null" json:"class_type_id"`
	Date            datatypes.Date `gorm:"column:date;not null;index:idx_trainer_date,priority:2" json:"date"`
	StartTime       datatypes.Time `gorm:"column:start_time;not null" json:"start_time"`
	EndTime         datatypes.Time `gorm:"column:end_time;not null" json:"end_time"`
	PriceCents      int64          `gorm:"column:price_cents;type:bigint;not null" json:"price_cents"`
	MaxCapacity     int            `gorm:"column:max_capacity;not null" json:"max_capacity"`
	CurrentBookings int            `gorm:"column:current_bookings;not null;default:0" json:"current_bookings"`
	IsActive        bool           `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	ClassType *ClassType `gorm:"foreignKey:ClassTypeID" json:"class_type,omitempty"`
	Trainer   *User      `gorm:"foreignKey:TrainerID" json:"trainer,omitempty"`
}

func (Session) TableName() string {
	return "trainer_sessions"
}

func (s *Session) IsFull() bool {
	return s.CurrentBookings >= s.MaxCapacity
}

func (s *Session) SpotsRemaining() int {
	return s.MaxCapacity - s.CurrentBookings
}

// StartsAt combines the session date and start time into a wall-clock instant.
func (s *Session) StartsAt() time.Time {
	d := time.Time(s.Date)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local).
		Add(time.Duration(s.StartTime))
}

// Bookable reports whether the session can accept a new booking now.
func (s *Session) Bookable(now time.Time) bool {
	return s.IsActive && !s.IsFull() && s.StartsAt().After(now)
}
