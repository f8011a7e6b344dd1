package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tlogi/internal/application/user/usecases"
	"tlogi/internal/infrastructure/auth"
	"tlogi/internal/interfaces/http/middleware"
	sharedConfig "tlogi/internal/shared/config"
	"tlogi/internal/shared/logger"
	"tlogi/internal/shared/utils"
)

const oauthStateCookie = "tlogi_oauth_state"

// oauthStateMaxAge bounds how long a login attempt may sit on the Discord
// consent screen before the state expires.
const oauthStateMaxAge = 10 * 60

type AuthHandler struct {
	oauthClient    *auth.DiscordOAuthClient
	authenticateUC usecases.AuthenticateExecutor
	resolveUC      usecases.ResolveAccessExecutor
	tokens         *auth.SessionTokenService
	cookieConfig   sharedConfig.CookieConfig
	sessionConfig  sharedConfig.SessionConfig
	frontendOrigin string
	logger         logger.Interface
}

func NewAuthHandler(
	oauthClient *auth.DiscordOAuthClient,
	authenticateUC usecases.AuthenticateExecutor,
	resolveUC usecases.ResolveAccessExecutor,
	tokens *auth.SessionTokenService,
	cookieConfig sharedConfig.CookieConfig,
	sessionConfig sharedConfig.SessionConfig,
	frontendOrigin string,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		oauthClient:    oauthClient,
		authenticateUC: authenticateUC,
		resolveUC:      resolveUC,
		tokens:         tokens,
		cookieConfig:   cookieConfig,
		sessionConfig:  sessionConfig,
		frontendOrigin: frontendOrigin,
		logger:         logger,
	}
}

// Login redirects the browser to the Discord consent screen with a
// freshly minted state value.
func (h *AuthHandler) Login(c *gin.Context) {
	state, err := generateOAuthState()
	if err != nil {
		h.logger.Errorw("failed to generate OAuth state", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to initiate login")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, oauthStateMaxAge, h.cookieConfig.Path, h.cookieConfig.Domain, h.cookieConfig.Secure, true)

	c.Redirect(http.StatusTemporaryRedirect, h.oauthClient.GetAuthURL(state))
}

// Callback completes the OAuth flow: verify state, exchange the code,
// upsert the user, and issue the session cookie before bouncing back to
// the dashboard.
func (h *AuthHandler) Callback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		h.logger.Warnw("OAuth provider returned error",
			"error_code", errParam,
			"error_description", c.Query("error_description"),
		)
		h.redirectWithError(c, "access_denied")
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		h.logger.Warnw("OAuth callback missing code or state")
		h.redirectWithError(c, "invalid_callback")
		return
	}

	storedState, err := c.Cookie(oauthStateCookie)
	if err != nil || storedState == "" || storedState != state {
		h.logger.Warnw("OAuth state mismatch")
		h.redirectWithError(c, "invalid_state")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, h.cookieConfig.Path, h.cookieConfig.Domain, h.cookieConfig.Secure, true)

	accessToken, err := h.oauthClient.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		h.logger.Errorw("OAuth code exchange failed", "error", err)
		h.redirectWithError(c, "exchange_failed")
		return
	}

	info, err := h.oauthClient.GetUserInfo(c.Request.Context(), accessToken)
	if err != nil {
		h.logger.Errorw("failed to fetch Discord user info", "error", err)
		h.redirectWithError(c, "userinfo_failed")
		return
	}

	result, err := h.authenticateUC.Execute(c.Request.Context(), usecases.AuthenticateCommand{
		DiscordID: info.ID,
		Username:  info.Username,
		Avatar:    info.Avatar,
	})
	if err != nil {
		h.logger.Errorw("failed to authenticate user", "discord_id", info.ID, "error", err)
		h.redirectWithError(c, "auth_failed")
		return
	}

	session, err := h.tokens.Generate(result.DiscordID, result.Username)
	if err != nil {
		h.logger.Errorw("failed to issue session token", "discord_id", result.DiscordID, "error", err)
		h.redirectWithError(c, "auth_failed")
		return
	}

	maxAge := h.sessionConfig.ExpiryDays * 24 * 60 * 60
	utils.SetSessionCookie(c, h.cookieConfig, session, maxAge)

	c.Redirect(http.StatusTemporaryRedirect, h.frontendOrigin)
}

// Me reports the caller's identity and access tier. The tier is resolved
// fresh so the dashboard sees role changes without a re-login.
func (h *AuthHandler) Me(c *gin.Context) {
	discordID := c.GetString(middleware.ContextKeyDiscordID)

	result, err := h.resolveUC.Execute(c.Request.Context(), usecases.ResolveAccessCommand{DiscordID: discordID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) redirectWithError(c *gin.Context, code string) {
	c.Redirect(http.StatusTemporaryRedirect, strings.TrimRight(h.frontendOrigin, "/")+"/?login_error="+code)
}

func generateOAuthState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
