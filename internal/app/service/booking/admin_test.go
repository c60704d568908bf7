package booking

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kassem10h/Gym-Poject/internal/models"
)

func TestAffectedMembers(t *testing.T) {
	held := func(memberID string) *models.Booking {
		return &models.Booking{MemberID: memberID}
	}

	t.Run("empty session notifies nobody", func(t *testing.T) {
		require.Empty(t, affectedMembers(nil))
	})

	t.Run("every holder is listed once", func(t *testing.T) {
		got := affectedMembers([]*models.Booking{held("m1"), held("m2"), held("m3")})
		require.Equal(t, []string{"m1", "m2", "m3"}, got)
	})

	t.Run("repeated holder collapses to one notification", func(t *testing.T) {
		got := affectedMembers([]*models.Booking{held("m1"), held("m1"), held("m2")})
		require.Equal(t, []string{"m1", "m2"}, got)
	})
}
