package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
)

func activeUntil(end time.Time) *models.Membership {
	return &models.Membership{
		StartDate: datatypes.Date(end.AddDate(0, 0, -30)),
		EndDate:   datatypes.Date(end),
		IsActive:  true,
	}
}

func TestNextWindowStart(t *testing.T) {
	today := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("no current membership starts today", func(t *testing.T) {
		require.Equal(t, today, nextWindowStart(nil, today))
	})

	t.Run("renewal before expiry chains from end date", func(t *testing.T) {
		end := time.Date(2026, 6, 25, 0, 0, 0, 0, time.UTC)
		got := nextWindowStart(activeUntil(end), today)
		require.Equal(t, time.Date(2026, 6, 26, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("renewal on the last day still chains", func(t *testing.T) {
		end := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
		got := nextWindowStart(activeUntil(end), today)
		require.Equal(t, time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("expired membership starts today", func(t *testing.T) {
		end := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
		require.Equal(t, today, nextWindowStart(activeUntil(end), today))
	})
}

func TestAssertCancellable(t *testing.T) {
	today := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("unexpired membership cancels", func(t *testing.T) {
		end := time.Date(2026, 6, 25, 0, 0, 0, 0, time.UTC)
		require.NoError(t, assertCancellable(activeUntil(end), today))
	})

	t.Run("last day still cancels", func(t *testing.T) {
		end := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
		require.NoError(t, assertCancellable(activeUntil(end), today))
	})

	t.Run("expired membership is rejected", func(t *testing.T) {
		end := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
		err := assertCancellable(activeUntil(end), today)
		require.Error(t, err)
		require.True(t, apperr.IsKind(err, apperr.KindValidation))
		require.Contains(t, err.Error(), "already expired")
	})
}
