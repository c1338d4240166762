package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/logger"
	"helpcenter/internal/shared/utils"
)

// PolicyEnforcer is satisfied by permission.Enforcer.
type PolicyEnforcer interface {
	Enforce(role, path, method string) (bool, error)
}

type PermissionMiddleware struct {
	enforcer PolicyEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer PolicyEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission checks the caller's role against the policy for the
// request path and method. It must run after the auth middleware.
func (m *PermissionMiddleware) RequirePermission() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := utils.GetActor(c)
		path := c.Request.URL.Path
		method := c.Request.Method

		allowed, err := m.enforcer.Enforce(actor.Role, path, method)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", actor.UserID, "path", path, "method", method)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", actor.UserID, "role", actor.Role, "path", path, "method", method)
			status := http.StatusForbidden
			if actor.Role == constants.RoleGuest {
				status = http.StatusUnauthorized
			}
			utils.ErrorResponse(c, status, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole admits only the listed roles without consulting the policy store.
func (m *PermissionMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := utils.GetActor(c)
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		m.logger.Warnw("role check failed", "user_id", actor.UserID, "role", actor.Role, "required_roles", roles)
		utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}
