package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpcenter/internal/infrastructure/auth"
	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/logger"
	"helpcenter/internal/shared/utils"
)

// TokenVerifier is satisfied by auth.JWTService.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setIdentity(c *gin.Context, claims *auth.Claims) {
	c.Set(constants.ContextKeyUserID, claims.UserID)
	c.Set(constants.ContextKeyUserRole, claims.Role)
	c.Set(constants.ContextKeyUserEmail, claims.Email)
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the caller identity when a valid token is present
// and otherwise lets the request through as a guest.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := m.verifier.Verify(token)
		if err == nil && claims.TokenType == auth.TokenTypeAccess {
			setIdentity(c, claims)
		}

		c.Next()
	}
}
