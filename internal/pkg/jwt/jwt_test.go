package jwt

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")
	principal := user.Principal{ID: "0193a1b2-0000-7000-8000-000000000001", Role: user.RoleHR}

	token, expiresAt, err := svc.GenerateAccessToken(principal)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	got, err := PrincipalFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, principal, got)
}

func TestJWTService_GenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "forever")

	_, _, err := svc.GenerateAccessToken(user.Principal{ID: "x", Role: user.RoleAdmin})
	assert.Error(t, err)
}

func TestPrincipalFromClaims_Rejects(t *testing.T) {
	cases := []map[string]interface{}{
		{"id": "a", "role": "Admin"},
		{"id": "a", "role": "Admin", "type": "refresh"},
		{"role": "Admin", "type": "access"},
		{"id": "a", "role": "Owner", "type": "access"},
		{"id": "a", "type": "access"},
	}

	for _, claims := range cases {
		_, err := PrincipalFromClaims(claims)
		assert.ErrorIs(t, err, ErrInvalidClaims, "%v", claims)
	}
}
