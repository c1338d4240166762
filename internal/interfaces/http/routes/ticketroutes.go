package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpcenter/internal/interfaces/http/handlers/ticket"
	"helpcenter/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	GuestRateLimiter     *middleware.RateLimiter
}

// SetupTicketRoutes registers the ticket routes. Guests may open tickets
// anonymously; every other route goes through the policy check.
func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.OptionalAuth())
	{
		tickets.POST("",
			config.GuestRateLimiter.LimitGuests(),
			config.TicketHandler.CreateTicket)

		guarded := tickets.Group("")
		guarded.Use(config.PermissionMiddleware.RequirePermission())
		{
			guarded.GET("", config.TicketHandler.ListTickets)

			guarded.POST("/:number/replies", config.TicketHandler.ReplyTicket)
			guarded.PATCH("/:number/status", config.TicketHandler.ChangeStatus)
			guarded.PATCH("/:number/priority", config.TicketHandler.ChangePriority)

			guarded.GET("/:number", config.TicketHandler.GetTicket)
		}
	}
}
