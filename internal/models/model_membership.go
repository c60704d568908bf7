package models

import (
	"time"

	"gorm.io/datatypes"
)

// Membership is a time-bounded subscription window. At most one row per user
// has is_active=true; cancelling clears is_active but keeps end_date, so
// access persists until the window closes.
type Membership struct {
	ID        string         `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID    string         `gorm:"column:user_id;type:uuid;not null;index;uniqueIndex:uniq_user_active_membership,where:is_active" json:"user_id"`
	Type      string         `gorm:"column:membership_type;type:varchar(50);not null" json:"type"`
	StartDate datatypes.Date `gorm:"column:start_date;not null" json:"start_date"`
	EndDate   datatypes.Date `gorm:"column:end_date;not null" json:"end_date"`
	IsActive  bool           `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
}

func (Membership) TableName() string {
	return "memberships"
}

// ExpiredAt reports whether the window has closed as of the given day.
func (m *Membership) ExpiredAt(today time.Time) bool {
	return dateBefore(time.Time(m.EndDate), today)
}

// DaysRemaining is the number of days of access left, zero if expired.
func (m *Membership) DaysRemaining(today time.Time) int {
	if m.ExpiredAt(today) {
		return 0
	}
	return int(truncateDay(time.Time(m.EndDate)).Sub(truncateDay(today)).Hours() / 24)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dateBefore(a, b time.Time) bool {
	return truncateDay(a).Before(truncateDay(b))
}
