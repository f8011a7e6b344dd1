package routes

import (
	"github.com/gin-gonic/gin"

	"tlogi/internal/interfaces/http/handlers"
	"tlogi/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.GET("/discord", config.AuthHandler.Login)
		auth.GET("/discord/callback", config.AuthHandler.Callback)

		auth.GET("/me", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Me)
		auth.POST("/logout", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Logout)
	}
}
