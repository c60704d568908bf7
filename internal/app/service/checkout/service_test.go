package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
)

// sessionAt builds a bookable session starting at the given instant.
func sessionAt(start time.Time) *models.Session {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local)
	return &models.Session{
		Date:            datatypes.Date(day),
		StartTime:       datatypes.Time(start.Sub(day)),
		EndTime:         datatypes.Time(start.Add(time.Hour).Sub(day)),
		MaxCapacity:     10,
		CurrentBookings: 3,
		IsActive:        true,
	}
}

func TestValidateSessionLine(t *testing.T) {
	now := time.Date(2026, 6, 15, 9, 0, 0, 0, time.Local)
	future := now.Add(2 * time.Hour)

	t.Run("bookable session passes", func(t *testing.T) {
		require.NoError(t, validateSessionLine(sessionAt(future), now, false))
	})

	t.Run("deactivated session is rejected", func(t *testing.T) {
		s := sessionAt(future)
		s.IsActive = false
		err := validateSessionLine(s, now, false)
		require.True(t, apperr.IsKind(err, apperr.KindValidation))
		require.Contains(t, err.Error(), "no longer available")
	})

	t.Run("started session is rejected", func(t *testing.T) {
		err := validateSessionLine(sessionAt(now.Add(-time.Minute)), now, false)
		require.True(t, apperr.IsKind(err, apperr.KindValidation))
		require.Contains(t, err.Error(), "in the past")
	})

	t.Run("start equal to now counts as past", func(t *testing.T) {
		err := validateSessionLine(sessionAt(now), now, false)
		require.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("full session is rejected", func(t *testing.T) {
		s := sessionAt(future)
		s.CurrentBookings = s.MaxCapacity
		err := validateSessionLine(s, now, false)
		require.True(t, apperr.IsKind(err, apperr.KindValidation))
		require.Contains(t, err.Error(), "full")
	})

	t.Run("last spot still passes", func(t *testing.T) {
		s := sessionAt(future)
		s.CurrentBookings = s.MaxCapacity - 1
		require.NoError(t, validateSessionLine(s, now, false))
	})

	t.Run("existing confirmed booking conflicts", func(t *testing.T) {
		err := validateSessionLine(sessionAt(future), now, true)
		require.True(t, apperr.IsKind(err, apperr.KindConflict))
	})

	// One bad line fails the gate outright; Process runs the gate inside the
	// same transaction that writes the order, so the products roll back too.
	t.Run("one failing line yields an error, never a partial pass", func(t *testing.T) {
		good := sessionAt(future)
		full := sessionAt(future.Add(3 * time.Hour))
		full.CurrentBookings = full.MaxCapacity

		require.NoError(t, validateSessionLine(good, now, false))
		require.Error(t, validateSessionLine(full, now, false))
	})
}

func TestProcessRequestNormalize(t *testing.T) {
	req := &ProcessRequest{
		ProductCartItemIDs: []string{"p1", "p2", "p1"},
		SessionCartItemIDs: []string{"s1", "s1", "s1", "s2"},
	}
	req.normalize()
	require.Equal(t, []string{"p1", "p2"}, req.ProductCartItemIDs)
	require.Equal(t, []string{"s1", "s2"}, req.SessionCartItemIDs)
}
