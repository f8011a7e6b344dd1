package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tlogi/internal/domain/user"
	"tlogi/internal/infrastructure/auth"
	"tlogi/internal/shared/logger"
	"tlogi/internal/shared/utils"
)

const (
	// ContextKeyDiscordID carries the authenticated Discord user ID.
	ContextKeyDiscordID = "discord_id"
	// ContextKeyUsername carries the session username.
	ContextKeyUsername = "username"
	// ContextKeyIsSuperAdmin is set by RequireStaff for downstream handlers.
	ContextKeyIsSuperAdmin = "is_super_admin"
)

type AuthMiddleware struct {
	tokens    *auth.SessionTokenService
	grantRepo user.StaffGrantRepository
	logger    logger.Interface
}

func NewAuthMiddleware(
	tokens *auth.SessionTokenService,
	grantRepo user.StaffGrantRepository,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:    tokens,
		grantRepo: grantRepo,
		logger:    logger,
	}
}

// RequireAuth verifies the session cookie and stores the identity on the
// request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionCookie(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify session token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(ContextKeyDiscordID, claims.DiscordID)
		c.Set(ContextKeyUsername, claims.Username)

		c.Next()
	}
}

// RequireStaff looks the grant up on every request rather than trusting
// anything embedded in the session, so a revocation cuts access off
// immediately. Must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		discordID := c.GetString(ContextKeyDiscordID)
		if discordID == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
			c.Abort()
			return
		}

		grant, err := m.grantRepo.FindByDiscordID(c.Request.Context(), discordID)
		if err != nil {
			m.logger.Errorw("failed to look up staff grant", "discord_id", discordID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to verify access")
			c.Abort()
			return
		}
		if grant == nil {
			utils.ErrorResponse(c, http.StatusForbidden, "staff access required")
			c.Abort()
			return
		}

		c.Set(ContextKeyIsSuperAdmin, grant.IsSuperAdmin())

		c.Next()
	}
}

// RequireSuperAdmin restricts the route to super admins. Must run after
// RequireStaff.
func (m *AuthMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextKeyIsSuperAdmin) {
			utils.ErrorResponse(c, http.StatusForbidden, "super admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
