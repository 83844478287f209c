package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlogistics-io/referencedata/internal/message"
)

const testSecret = "test-secret"

func TestUserTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := NewUserToken(testSecret, userID, time.Minute)
	require.NoError(t, err)

	principal, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, principal.UserID)
	assert.False(t, principal.ServiceLevel)
}

func TestServiceTokenRoundTrip(t *testing.T) {
	token, err := NewServiceToken(testSecret, "notification", time.Minute)
	require.NoError(t, err)

	principal, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.True(t, principal.ServiceLevel)
	assert.Equal(t, uuid.Nil, principal.UserID)
}

func TestParseToken_Invalid(t *testing.T) {
	cases := map[string]string{
		"garbage":      "not-a-token",
		"empty":        "",
		"wrong secret": mustToken(t, "other-secret", uuid.New(), time.Minute),
		"expired":      mustToken(t, testSecret, uuid.New(), -time.Minute),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(testSecret, token)
			require.Error(t, err)

			var uErr *message.UnauthorizedError
			require.ErrorAs(t, err, &uErr)
			assert.True(t, uErr.Unauthenticated)
			assert.Equal(t, message.KeyTokenInvalid, uErr.MessageKey())
		})
	}
}

func mustToken(t *testing.T, secret string, userID uuid.UUID, ttl time.Duration) string {
	t.Helper()

	token, err := NewUserToken(secret, userID, ttl)
	require.NoError(t, err)

	return token
}
