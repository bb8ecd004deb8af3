package token

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJwtService(t *testing.T) {
	// Setup
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	require.NoError(t, err)
	secretKey := base64.URLEncoding.EncodeToString(bytes)
	issuer := "testIssuer"

	svc := NewJwtService(secretKey, issuer)

	t.Run("Issue and Decode valid token", func(t *testing.T) {
		token, err := svc.Issue("bench-runner", 5*time.Minute)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := svc.Decode(token)
		assert.NoError(t, err)
		assert.Equal(t, "bench-runner", claims[ClaimSubject])
		assert.Equal(t, issuer, claims[ClaimIssuer])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		token, err := svc.Issue("bench-runner", -time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Decode token from another issuer", func(t *testing.T) {
		token, err := NewJwtService(secretKey, "someoneElse").Issue("bench-runner", time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrWrongIssuer)
	})

	t.Run("Decode token signed with another secret", func(t *testing.T) {
		token, err := NewJwtService("other-secret", issuer).Issue("bench-runner", time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Issue requires a subject", func(t *testing.T) {
		_, err := svc.Issue("", time.Minute)
		assert.ErrorIs(t, err, ErrEmptySubject)
	})
}
