package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func sessionOn(day time.Time, startHour int) *Session {
	return &Session{
		Date:        datatypes.Date(time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)),
		StartTime:   datatypes.NewTime(startHour, 0, 0, 0),
		EndTime:     datatypes.NewTime(startHour+1, 0, 0, 0),
		MaxCapacity: 10,
		IsActive:    true,
	}
}

func TestSessionCapacity(t *testing.T) {
	s := &Session{MaxCapacity: 3, CurrentBookings: 2}
	require.False(t, s.IsFull())
	require.Equal(t, 1, s.SpotsRemaining())

	s.CurrentBookings = 3
	require.True(t, s.IsFull())
	require.Equal(t, 0, s.SpotsRemaining())
}

func TestSessionStartsAt(t *testing.T) {
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)
	s := sessionOn(day, 14)
	require.Equal(t, time.Date(2026, 6, 1, 14, 0, 0, 0, time.Local), s.StartsAt())
}

func TestSessionBookable(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.Local)

	future := sessionOn(now, 14)
	require.True(t, future.Bookable(now))

	past := sessionOn(now, 10)
	require.False(t, past.Bookable(now))

	starting := sessionOn(now, 12)
	require.False(t, starting.Bookable(now), "a session at its start instant is no longer bookable")

	full := sessionOn(now, 14)
	full.CurrentBookings = full.MaxCapacity
	require.False(t, full.Bookable(now))

	inactive := sessionOn(now, 14)
	inactive.IsActive = false
	require.False(t, inactive.Bookable(now))
}
