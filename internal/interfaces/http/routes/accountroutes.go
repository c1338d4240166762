package routes

import (
	"github.com/gin-gonic/gin"

	addressbookhandlers "helpcenter/internal/interfaces/http/handlers/addressbook"
	onboardinghandlers "helpcenter/internal/interfaces/http/handlers/onboarding"
	"helpcenter/internal/interfaces/http/middleware"
)

// AccountRouteConfig covers the per-user resources: address book and
// onboarding progress.
type AccountRouteConfig struct {
	AddressBookHandler   *addressbookhandlers.AddressBookHandler
	OnboardingHandler    *onboardinghandlers.OnboardingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAccountRoutes(api *gin.RouterGroup, cfg *AccountRouteConfig) {
	book := api.Group("/address-book")
	book.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.RequirePermission())
	{
		book.GET("", cfg.AddressBookHandler.Get)
		book.POST("/entries", cfg.AddressBookHandler.Add)
		book.PATCH("/entries/:id", cfg.AddressBookHandler.Update)
		book.DELETE("/entries/:id", cfg.AddressBookHandler.Remove)
	}

	onboarding := api.Group("/onboarding")
	onboarding.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.RequirePermission())
	{
		onboarding.GET("/progress", cfg.OnboardingHandler.ListProgress)
		onboarding.GET("/guides/:slug", cfg.OnboardingHandler.GetProgress)
		onboarding.PUT("/guides/:slug", cfg.OnboardingHandler.PutProgress)
	}
}
