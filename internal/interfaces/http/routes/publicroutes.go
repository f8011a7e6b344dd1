package routes

import (
	"github.com/gin-gonic/gin"

	"tlogi/internal/interfaces/http/handlers"
)

type PublicRouteConfig struct {
	TranscriptHandler *handlers.TranscriptHandler
}

// SetupPublicRoutes registers the unauthenticated transcript view. The
// public token is the only credential.
func SetupPublicRoutes(api *gin.RouterGroup, config *PublicRouteConfig) {
	public := api.Group("/public")
	{
		public.GET("/tickets/:token", config.TranscriptHandler.Get)
	}
}
