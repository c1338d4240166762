package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpcenter/internal/shared/constants"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, err := svc.Generate(42, "vendor@example.com", constants.RoleVendor)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "vendor@example.com", claims.Email)
	assert.Equal(t, constants.RoleVendor, claims.Role)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	token, err := NewJWTService("one", 15).Generate(1, "", constants.RoleCustomer)
	require.NoError(t, err)

	_, err = NewJWTService("two", 15).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnknownRole(t *testing.T) {
	svc := NewJWTService("s", 15)

	_, err := svc.Generate(1, "", "superuser")
	assert.Error(t, err)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: 1, Role: "superuser", TokenType: TokenTypeAccess})
	signed, err := raw.SignedString([]byte("s"))
	require.NoError(t, err)
	_, err = svc.Verify(signed)
	assert.ErrorContains(t, err, "unknown role")
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("s", -1)
	token, err := svc.Generate(1, "", constants.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}
