package routes

import (
	"github.com/gin-gonic/gin"

	"tlogi/internal/interfaces/http/handlers"
	"tlogi/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireStaff())
	{
		// Specific paths before parameterized ones to avoid route conflicts.
		tickets.GET("", config.TicketHandler.List)
		tickets.GET("/stats", config.TicketHandler.Stats)

		tickets.GET("/:id", config.TicketHandler.Get)
		tickets.GET("/:id/messages", config.TicketHandler.GetMessages)
		tickets.POST("/:id/messages", config.TicketHandler.PostMessage)
		tickets.POST("/:id/priority", config.TicketHandler.SetPriority)
		tickets.POST("/:id/close", config.TicketHandler.Close)

		// Destructive operations are super admin only.
		tickets.DELETE("/:id",
			config.AuthMiddleware.RequireSuperAdmin(),
			config.TicketHandler.Delete)
		tickets.DELETE("/:id/messages/:message_id",
			config.AuthMiddleware.RequireSuperAdmin(),
			config.TicketHandler.DeleteMessage)
	}
}
