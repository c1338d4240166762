package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/constants"
)

type TokenType string

const (
	TokenTypeAccess TokenType = "access"
)

// Claims identify the marketplace user behind a request. Tokens are issued
// by the marketplace identity service with the shared secret.
type Claims struct {
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs an access token. Used by operators and tests; production
// tokens normally come from the identity service.
func (s *JWTService) Generate(userID uint, email, role string) (string, error) {
	if !isKnownRole(role) {
		return "", fmt.Errorf("unknown role %q", role)
	}
	now := biztime.NowUTC()
	claims := &Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.accessExpMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, fmt.Errorf("invalid token type %q", claims.TokenType)
	}
	if !isKnownRole(claims.Role) {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}
	if claims.Role != constants.RoleGuest && claims.UserID == 0 {
		return nil, fmt.Errorf("token has no user id")
	}
	return claims, nil
}

// AccessExpMinutes returns the access token expiration time in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}

func isKnownRole(role string) bool {
	switch role {
	case constants.RoleGuest, constants.RoleCustomer, constants.RoleVendor, constants.RoleAdmin:
		return true
	}
	return false
}
