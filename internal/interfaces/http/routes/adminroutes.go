package routes

import (
	"github.com/gin-gonic/gin"

	"tlogi/internal/interfaces/http/handlers"
	"tlogi/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AdminHandler   *handlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAdminRoutes(api *gin.RouterGroup, config *AdminRouteConfig) {
	admin := api.Group("/admin")
	admin.Use(
		config.AuthMiddleware.RequireAuth(),
		config.AuthMiddleware.RequireStaff(),
		config.AuthMiddleware.RequireSuperAdmin(),
	)
	{
		admin.GET("/users", config.AdminHandler.ListUsers)
		admin.POST("/users/:discord_id/role", config.AdminHandler.SetUserRole)
		admin.GET("/updates", config.AdminHandler.CheckUpdates)
	}
}
