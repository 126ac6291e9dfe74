//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const signingSecret = "starclip-test-secret"

// MintToken issues an HS256 bearer token the way the platform's auth service
// does. The client never verifies the signature, so the secret only matters
// to the fake API.
func MintToken(t *testing.T, creatorID string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"creator_id": creatorID,
		"sub":        creatorID,
	}
	if !expiresAt.IsZero() {
		claims["exp"] = jwt.NewNumericDate(expiresAt)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signingSecret))
	require.NoError(t, err)
	return token
}
