package routes

import (
	"github.com/gin-gonic/gin"

	"helpcenter/internal/interfaces/http/middleware"
)

// ContentLifecycle is the per-kind read and publication surface.
type ContentLifecycle interface {
	GetPublished(c *gin.Context)
	ListPublished(c *gin.Context)
	AdminGet(c *gin.Context)
	AdminList(c *gin.Context)
	Publish(c *gin.Context)
	Unpublish(c *gin.Context)
	Archive(c *gin.Context)
}

// ContentAuthoring is the per-kind create and update surface.
type ContentAuthoring interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
}

// ContentKindRoutes binds one content kind to its URL segment.
type ContentKindRoutes struct {
	Segment   string
	Lifecycle ContentLifecycle
	Authoring ContentAuthoring
}

type ContentRouteConfig struct {
	Kinds                []ContentKindRoutes
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupContentRoutes registers the public read routes and the admin
// authoring routes for every content kind.
func SetupContentRoutes(api *gin.RouterGroup, cfg *ContentRouteConfig) {
	for _, k := range cfg.Kinds {
		public := api.Group("/" + k.Segment)
		{
			public.GET("", k.Lifecycle.ListPublished)
			public.GET("/:slug", k.Lifecycle.GetPublished)
		}

		admin := api.Group("/admin/" + k.Segment)
		admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.RequirePermission())
		{
			admin.POST("", k.Authoring.Create)
			admin.GET("", k.Lifecycle.AdminList)

			admin.POST("/:id/publish", k.Lifecycle.Publish)
			admin.POST("/:id/unpublish", k.Lifecycle.Unpublish)

			admin.GET("/:id", k.Lifecycle.AdminGet)
			admin.PATCH("/:id", k.Authoring.Update)
			admin.DELETE("/:id", k.Lifecycle.Archive)
		}
	}
}
