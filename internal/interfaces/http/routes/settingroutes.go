package routes

import (
	"github.com/gin-gonic/gin"

	"tlogi/internal/interfaces/http/handlers"
	"tlogi/internal/interfaces/http/middleware"
)

type SettingRouteConfig struct {
	SettingHandler *handlers.SettingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupSettingRoutes(api *gin.RouterGroup, config *SettingRouteConfig) {
	settings := api.Group("/settings")
	{
		// Public: the login page needs the site name before any session exists.
		settings.GET("", config.SettingHandler.Get)

		// Authenticated only; the use case enforces who may rename (first
		// setter bootstraps super admin, afterwards super admins only).
		settings.POST("/site-name",
			config.AuthMiddleware.RequireAuth(),
			config.SettingHandler.SetSiteName)
	}
}
