package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func membershipEnding(end time.Time) *Membership {
	return &Membership{
		StartDate: datatypes.Date(end.AddDate(0, 0, -30)),
		EndDate:   datatypes.Date(end),
		IsActive:  true,
	}
}

func TestMembershipExpiredAt(t *testing.T) {
	today := time.Date(2026, 6, 15, 9, 30, 0, 0, time.UTC)

	require.False(t, membershipEnding(today).ExpiredAt(today), "expires end of its last day, not during it")
	require.False(t, membershipEnding(today.AddDate(0, 0, 5)).ExpiredAt(today))
	require.True(t, membershipEnding(today.AddDate(0, 0, -1)).ExpiredAt(today))
}

func TestMembershipDaysRemaining(t *testing.T) {
	today := time.Date(2026, 6, 15, 23, 59, 0, 0, time.UTC)

	require.Equal(t, 0, membershipEnding(today).DaysRemaining(today))
	require.Equal(t, 10, membershipEnding(today.AddDate(0, 0, 10)).DaysRemaining(today))
	require.Equal(t, 0, membershipEnding(today.AddDate(0, 0, -3)).DaysRemaining(today))
}

func TestMembershipDaysRemainingIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, 6, 15, 0, 1, 0, 0, time.UTC)
	night := time.Date(2026, 6, 15, 23, 59, 0, 0, time.UTC)
	m := membershipEnding(time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC))

	require.Equal(t, m.DaysRemaining(morning), m.DaysRemaining(night))
}
