package authtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kassem10h/Gym-Poject/pkg/types"
)

func TestSignParseRoundTrip(t *testing.T) {
	token, err := Sign("secret", "user-1", types.RoleTrainer, time.Hour)
	require.NoError(t, err)

	claims, err := Parse("secret", token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, types.RoleTrainer, claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Sign("secret", "user-1", types.RoleMember, time.Hour)
	require.NoError(t, err)

	_, err = Parse("other-secret", token)
	require.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := Sign("secret", "user-1", types.RoleMember, -time.Minute)
	require.NoError(t, err)

	_, err = Parse("secret", token)
	require.Error(t, err)
}

func TestParseRejectsEmptyToken(t *testing.T) {
	_, err := Parse("secret", "")
	require.ErrorIs(t, err, ErrInvalidToken)
}
