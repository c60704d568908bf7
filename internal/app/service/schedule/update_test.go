package schedule

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
	"github.com/kassem10h/Gym-Poject/pkg/tool"
)

func scheduledSession(t *testing.T) *models.Session {
	t.Helper()
	start, err := tool.ParseClock("10:00")
	require.NoError(t, err)
	end, err := tool.ParseClock("11:00")
	require.NoError(t, err)
	return &models.Session{
		Date:        datatypes.Date(time.Now().AddDate(0, 0, 7)),
		StartTime:   start,
		EndTime:     end,
		PriceCents:  2500,
		MaxCapacity: 12,
	}
}

func TestApplySessionUpdate(t *testing.T) {
	t.Run("empty patch changes nothing", func(t *testing.T) {
		s := scheduledSession(t)
		before := *s
		require.NoError(t, applySessionUpdate(s, &SessionUpdate{}))
		require.Equal(t, before, *s)
	})

	t.Run("present fields are applied", func(t *testing.T) {
		s := scheduledSession(t)
		upd := &SessionUpdate{
			StartTime:   lo.ToPtr("09:30"),
			EndTime:     lo.ToPtr("10:30"),
			PriceCents:  lo.ToPtr(int64(3000)),
			MaxCapacity: lo.ToPtr(8),
		}
		require.NoError(t, applySessionUpdate(s, upd))
		require.Equal(t, "09:30", tool.FormatClock(s.StartTime))
		require.Equal(t, "10:30", tool.FormatClock(s.EndTime))
		require.Equal(t, int64(3000), s.PriceCents)
		require.Equal(t, 8, s.MaxCapacity)
	})

	t.Run("explicit zero price is rejected, not ignored", func(t *testing.T) {
		s := scheduledSession(t)
		err := applySessionUpdate(s, &SessionUpdate{PriceCents: lo.ToPtr(int64(0))})
		require.True(t, apperr.IsKind(err, apperr.KindValidation))
		require.Equal(t, int64(2500), s.PriceCents)
	})

	t.Run("explicit zero capacity is rejected, not ignored", func(t *testing.T) {
		s := scheduledSession(t)
		err := applySessionUpdate(s, &SessionUpdate{MaxCapacity: lo.ToPtr(0)})
		require.True(t, apperr.IsKind(err, apperr.KindValidation))
		require.Equal(t, 12, s.MaxCapacity)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		s := scheduledSession(t)
		err := applySessionUpdate(s, &SessionUpdate{PriceCents: lo.ToPtr(int64(-100))})
		require.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("end at or before start is rejected", func(t *testing.T) {
		s := scheduledSession(t)
		err := applySessionUpdate(s, &SessionUpdate{EndTime: lo.ToPtr("10:00")})
		require.True(t, apperr.IsKind(err, apperr.KindValidation))
		require.Contains(t, err.Error(), "after start time")
	})

	t.Run("past date is rejected", func(t *testing.T) {
		s := scheduledSession(t)
		err := applySessionUpdate(s, &SessionUpdate{Date: lo.ToPtr("2020-01-01")})
		require.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("malformed clock is rejected", func(t *testing.T) {
		s := scheduledSession(t)
		err := applySessionUpdate(s, &SessionUpdate{StartTime: lo.ToPtr("quarter past ten")})
		require.True(t, apperr.IsKind(err, apperr.KindValidation))
	})
}
