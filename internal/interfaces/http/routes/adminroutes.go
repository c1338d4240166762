package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "helpcenter/internal/interfaces/http/handlers/admin"
	"helpcenter/internal/interfaces/http/middleware"
	"helpcenter/internal/shared/constants"
)

// AdminRouteConfig holds dependencies for admin-only routes that are not
// content authoring.
type AdminRouteConfig struct {
	PolicyHandler        *adminHandlers.PolicyHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures the access policy management routes. They are
// gated by role rather than by the policy store they edit.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	policies := api.Group("/admin/policies")
	policies.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.RequireRole(constants.RoleAdmin))
	{
		policies.GET("", cfg.PolicyHandler.ListPolicies)
		policies.POST("", cfg.PolicyHandler.AddPolicy)
		policies.DELETE("", cfg.PolicyHandler.RemovePolicy)
		policies.POST("/reload", cfg.PolicyHandler.ReloadPolicies)
	}
}
