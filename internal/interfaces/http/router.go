package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"helpcenter/internal/interfaces/http/middleware"
	"helpcenter/internal/interfaces/http/routes"
	"helpcenter/internal/shared/utils"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.healthCheck)

	api := c.engine.Group("/api/v1")
	api.Use(c.apiRateLimiter.Limit())

	routes.SetupContentRoutes(api, &routes.ContentRouteConfig{
		Kinds: []routes.ContentKindRoutes{
			{Segment: "articles", Lifecycle: c.hdlrs.articleLifecycle, Authoring: c.hdlrs.articleHandler},
			{Segment: "guides", Lifecycle: c.hdlrs.guideLifecycle, Authoring: c.hdlrs.guideHandler},
			{Segment: "videos", Lifecycle: c.hdlrs.videoLifecycle, Authoring: c.hdlrs.videoHandler},
		},
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.ticketHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		GuestRateLimiter:     c.guestRateLimiter,
	})

	routes.SetupAccountRoutes(api, &routes.AccountRouteConfig{
		AddressBookHandler:   c.hdlrs.addressBookHandler,
		OnboardingHandler:    c.hdlrs.onboardingHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		PolicyHandler:        c.hdlrs.policyHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

func (c *Container) healthCheck(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status := healthStatus{Status: "ok", Database: "ok", Redis: "disabled"}
	code := http.StatusOK

	if sqlDB, err := c.db.DB(); err != nil || sqlDB.PingContext(reqCtx) != nil {
		status.Status = "degraded"
		status.Database = "unreachable"
		code = http.StatusServiceUnavailable
	}
	if c.redis != nil {
		status.Redis = "ok"
		if err := c.redis.Ping(reqCtx).Err(); err != nil {
			status.Redis = "unreachable"
		}
	}

	ctx.JSON(code, utils.APIResponse{Success: code == http.StatusOK, Data: status})
}
