package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminUC "tlogi/internal/application/admin/usecases"
	settingUC "tlogi/internal/application/setting/usecases"
	ticketUC "tlogi/internal/application/ticket/usecases"
	userUC "tlogi/internal/application/user/usecases"
	"tlogi/internal/infrastructure/auth"
	"tlogi/internal/infrastructure/botclient"
	"tlogi/internal/infrastructure/config"
	"tlogi/internal/infrastructure/feed"
	"tlogi/internal/infrastructure/repository"
	"tlogi/internal/interfaces/http/handlers"
	"tlogi/internal/interfaces/http/middleware"
	"tlogi/internal/interfaces/http/routes"
	"tlogi/internal/shared/logger"
)

// Router wires the dashboard API: repositories, use cases, handlers, and
// the role-gated route tree.
type Router struct {
	engine            *gin.Engine
	cfg               *config.Config
	authHandler       *handlers.AuthHandler
	ticketHandler     *handlers.TicketHandler
	adminHandler      *handlers.AdminHandler
	settingHandler    *handlers.SettingHandler
	transcriptHandler *handlers.TranscriptHandler
	authMiddleware    *middleware.AuthMiddleware
	logger            logger.Interface
}

func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	messageRepo := repository.NewTicketMessageRepository(db)
	userRepo := repository.NewUserRepository(db)
	grantRepo := repository.NewStaffGrantRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// The dashboard talks to Discord only through the bot's webhook.
	notifier := botclient.NewClient(cfg.Dashboard.BotURL)

	oauthClient := auth.NewDiscordOAuthClient(auth.DiscordOAuthConfig{
		ClientID:     cfg.OAuth.Discord.ClientID,
		ClientSecret: cfg.OAuth.Discord.ClientSecret,
		RedirectURL:  cfg.OAuth.Discord.RedirectURL,
	})
	tokens := auth.NewSessionTokenService(cfg.Auth.Session.Secret, cfg.Auth.Session.ExpiryDays)
	feedClient := feed.NewUpdateFeedClient(cfg.Dashboard.UpdateFeedURL)

	frontendOrigin := cfg.Dashboard.FrontendOrigin

	authenticateUC := userUC.NewAuthenticateUseCase(userRepo, grantRepo, log)
	resolveAccessUC := userUC.NewResolveAccessUseCase(userRepo, grantRepo, log)
	listUsersUC := userUC.NewListUsersUseCase(userRepo, log)
	setUserRoleUC := userUC.NewSetUserRoleUseCase(grantRepo, log)

	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo, userRepo, log)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo, userRepo, log)
	getMessagesUC := ticketUC.NewGetMessagesUseCase(ticketRepo, messageRepo, userRepo, log)
	postMessageUC := ticketUC.NewPostMessageUseCase(ticketRepo, messageRepo, notifier, log)
	setPriorityUC := ticketUC.NewSetPriorityUseCase(ticketRepo, log)
	closeTicketUC := ticketUC.NewCloseTicketUseCase(ticketRepo, messageRepo, userRepo, notifier, frontendOrigin, log)
	deleteTicketUC := ticketUC.NewDeleteTicketUseCase(ticketRepo, messageRepo, log)
	deleteMessageUC := ticketUC.NewDeleteMessageUseCase(ticketRepo, messageRepo, log)
	statsUC := ticketUC.NewGetTicketStatsUseCase(ticketRepo, log)
	transcriptUC := ticketUC.NewGetPublicTranscriptUseCase(ticketRepo, messageRepo, userRepo, log)

	getSettingsUC := settingUC.NewGetSettingsUseCase(settingRepo, grantRepo, log)
	setSiteNameUC := settingUC.NewSetSiteNameUseCase(settingRepo, grantRepo, log)

	checkUpdatesUC := adminUC.NewCheckUpdatesUseCase(feedClient, log)

	authMiddleware := middleware.NewAuthMiddleware(tokens, grantRepo, log)

	authHandler := handlers.NewAuthHandler(
		oauthClient, authenticateUC, resolveAccessUC, tokens,
		cfg.Auth.Cookie, cfg.Auth.Session, frontendOrigin, log,
	)
	ticketHandler := handlers.NewTicketHandler(
		listTicketsUC, getTicketUC, getMessagesUC, postMessageUC,
		setPriorityUC, closeTicketUC, deleteTicketUC, deleteMessageUC,
		statsUC, log,
	)
	adminHandler := handlers.NewAdminHandler(listUsersUC, setUserRoleUC, checkUpdatesUC, log)
	settingHandler := handlers.NewSettingHandler(getSettingsUC, setSiteNameUC, log)
	transcriptHandler := handlers.NewTranscriptHandler(transcriptUC)

	return &Router{
		engine:            engine,
		cfg:               cfg,
		authHandler:       authHandler,
		ticketHandler:     ticketHandler,
		adminHandler:      adminHandler,
		settingHandler:    settingHandler,
		transcriptHandler: transcriptHandler,
		authMiddleware:    authMiddleware,
		logger:            log,
	}
}

// SetupRoutes configures middleware and the full route tree.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.CORS([]string{r.cfg.Dashboard.FrontendOrigin}))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		AdminHandler:   r.adminHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupSettingRoutes(api, &routes.SettingRouteConfig{
		SettingHandler: r.settingHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupPublicRoutes(api, &routes.PublicRouteConfig{
		TranscriptHandler: r.transcriptHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
