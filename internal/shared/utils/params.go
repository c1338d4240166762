package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/errors"
)

// ParseUintParam parses a positive numeric path parameter.
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(id), nil
}

// ParseSlugParam reads a slug path parameter and checks its shape.
func ParseSlugParam(c *gin.Context, paramName string) (string, error) {
	slug := c.Param(paramName)
	if !IsSlug(slug) {
		return "", errors.NewValidationError("invalid slug")
	}
	return slug, nil
}

// Actor is the identity the auth middleware attached to the request.
// UserID is 0 and Role is guest for anonymous callers.
type Actor struct {
	UserID uint
	Role   string
	Email  string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == constants.RoleAdmin
}

// GetActor returns the caller identity from the gin context.
func GetActor(c *gin.Context) Actor {
	actor := Actor{Role: constants.RoleGuest}
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			actor.UserID = id
		}
	}
	if v, ok := c.Get(constants.ContextKeyUserRole); ok {
		if role, ok := v.(string); ok && role != "" {
			actor.Role = role
		}
	}
	actor.Email = c.GetString(constants.ContextKeyUserEmail)
	return actor
}
