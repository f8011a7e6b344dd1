package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ticketUC "tlogi/internal/application/ticket/usecases"
	"tlogi/internal/domain/ticket"
	sharedConfig "tlogi/internal/shared/config"
	"tlogi/internal/shared/logger"
	"tlogi/internal/shared/utils"
)

// WebhookServer is the bot-internal HTTP surface the dashboard calls to
// deliver ticket events into Discord. It binds on a private address and
// carries no authentication of its own.
type WebhookServer struct {
	notifier   ticketUC.BotNotifier
	ticketRepo ticket.Repository
	cfg        sharedConfig.BotConfig
	logger     logger.Interface
	server     *http.Server
}

func NewWebhookServer(
	notifier ticketUC.BotNotifier,
	ticketRepo ticket.Repository,
	cfg sharedConfig.BotConfig,
	logger logger.Interface,
) *WebhookServer {
	return &WebhookServer{
		notifier:   notifier,
		ticketRepo: ticketRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

func (w *WebhookServer) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", w.handleHealth)
	router.POST("/staff-reply", w.handleStaffReply)
	router.POST("/ticket-transcript", w.handleTranscript)
	router.POST("/ticket-delete-channel", w.handleDeleteChannel)

	return router
}

func (w *WebhookServer) Start() error {
	gin.SetMode(gin.ReleaseMode)

	w.server = &http.Server{
		Addr:         w.cfg.WebhookAddr(),
		Handler:      w.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	w.logger.Infow("webhook server listening", "addr", w.cfg.WebhookAddr())

	if err := w.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("webhook server failed: %w", err)
	}
	return nil
}

func (w *WebhookServer) Shutdown(ctx context.Context) error {
	if w.server == nil {
		return nil
	}
	return w.server.Shutdown(ctx)
}

func (w *WebhookServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type staffReplyRequest struct {
	TicketID uint   `json:"ticket_id" binding:"required"`
	Username string `json:"username"`
	Message  string `json:"message" binding:"required"`
}

// handleStaffReply fails loudly: the dashboard treats relay errors as
// warnings, so a silent 200 here would hide every delivery problem.
func (w *WebhookServer) handleStaffReply(c *gin.Context) {
	var req staffReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "ticket_id and message are required")
		return
	}

	if err := w.notifier.SendStaffReply(c.Request.Context(), req.TicketID, req.Username, req.Message); err != nil {
		w.logger.Errorw("failed to relay staff reply", "ticket_id", req.TicketID, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to deliver staff reply")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "staff reply delivered", nil)
}

type transcriptRequest struct {
	TicketID      uint   `json:"ticket_id" binding:"required"`
	DiscordUserID string `json:"discord_user_id" binding:"required"`
	Transcript    string `json:"transcript"`
	ViewURL       string `json:"view_url"`
}

func (w *WebhookServer) handleTranscript(c *gin.Context) {
	var req transcriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "ticket_id and discord_user_id are required")
		return
	}

	t, err := w.ticketRepo.FindByID(c.Request.Context(), req.TicketID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to look up ticket")
		return
	}
	if t == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "ticket not found")
		return
	}

	if err := w.notifier.SendTranscript(c.Request.Context(), req.TicketID, req.DiscordUserID, req.Transcript, req.ViewURL); err != nil {
		if errors.Is(err, ErrUnknownUser) {
			utils.ErrorResponse(c, http.StatusNotFound, "discord user not found")
			return
		}
		w.logger.Errorw("failed to deliver transcript", "ticket_id", req.TicketID, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to deliver transcript")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "transcript delivered", nil)
}

type deleteChannelRequest struct {
	TicketID uint `json:"ticket_id" binding:"required"`
}

// handleDeleteChannel answers 200 when the channel is already gone: channel
// teardown is cleanup, and a re-closed ticket has no channel left to delete.
// Any other failure is a real error and surfaces as 500.
func (w *WebhookServer) handleDeleteChannel(c *gin.Context) {
	var req deleteChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "ticket_id is required")
		return
	}

	if err := w.notifier.DeleteTicketChannel(c.Request.Context(), req.TicketID); err != nil {
		if errors.Is(err, ErrChannelGone) {
			w.logger.Warnw("ticket channel already gone", "ticket_id", req.TicketID)
			utils.SuccessResponse(c, http.StatusOK, "channel already removed", nil)
			return
		}
		w.logger.Errorw("failed to delete ticket channel", "ticket_id", req.TicketID, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to delete ticket channel")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "channel deleted", nil)
}
