package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opshive/hrms/internal/auth"
)

func TestTokenManager(t *testing.T) {
	userID := uuid.New().String()
	orgID := uuid.New().String()

	t.Run("valid token carries both ids", func(t *testing.T) {
		tm := auth.NewTokenManager("test_secret", time.Hour)

		token, err := tm.Generate(userID, orgID)
		require.NoError(t, err)

		claims, err := tm.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, orgID, claims.OrganisationID)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		tm := auth.NewTokenManager("test_secret", -time.Minute)

		token, err := tm.Generate(userID, orgID)
		require.NoError(t, err)

		_, err = tm.Validate(token)
		assert.Error(t, err)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		tm := auth.NewTokenManager("test_secret", time.Hour)
		other := auth.NewTokenManager("other_secret", time.Hour)

		token, err := other.Generate(userID, orgID)
		require.NoError(t, err)

		_, err = tm.Validate(token)
		assert.Error(t, err)
	})
}
