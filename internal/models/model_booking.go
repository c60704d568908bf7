package models

import (
	"time"

	"github.com/kassem10h/Gym-Poject/pkg/types"
)

// Booking is a member's reservation against a session. The partial unique
// index keeps at most one confirmed booking per (member, session) even under
// concurrent checkouts.
type Booking struct {
	ID        string              `gorm:"column:id;type:uuid;primary_key" json:"id"`
	MemberID  string              `gorm:"column:member_id;type:uuid;not null;index;uniqueIndex:uniq_member_session_confirmed,priority:1,where:status = 'confirmed'" json:"member_id"`
	SessionID string              `gorm:"column:session_id;type:uuid;not null;index;uniqueIndex:uniq_member_session_confirmed,priority:2,where:status = 'confirmed'" json:"session_id"`
	Status    types.BookingStatus `gorm:"column:status;type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`

	Session *Session `gorm:"foreignKey:SessionID" json:"session,omitempty"`
	Member  *User    `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}
