package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tlogi/internal/application/ticket/usecases"
	"tlogi/internal/interfaces/http/middleware"
	"tlogi/internal/shared/logger"
	"tlogi/internal/shared/utils"
)

type TicketHandler struct {
	listUC          usecases.ListTicketsExecutor
	getUC           usecases.GetTicketExecutor
	getMessagesUC   usecases.GetMessagesExecutor
	postMessageUC   usecases.PostMessageExecutor
	setPriorityUC   usecases.SetPriorityExecutor
	closeUC         usecases.CloseTicketExecutor
	deleteUC        usecases.DeleteTicketExecutor
	deleteMessageUC usecases.DeleteMessageExecutor
	statsUC         usecases.GetTicketStatsExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	listUC usecases.ListTicketsExecutor,
	getUC usecases.GetTicketExecutor,
	getMessagesUC usecases.GetMessagesExecutor,
	postMessageUC usecases.PostMessageExecutor,
	setPriorityUC usecases.SetPriorityExecutor,
	closeUC usecases.CloseTicketExecutor,
	deleteUC usecases.DeleteTicketExecutor,
	deleteMessageUC usecases.DeleteMessageExecutor,
	statsUC usecases.GetTicketStatsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		listUC:          listUC,
		getUC:           getUC,
		getMessagesUC:   getMessagesUC,
		postMessageUC:   postMessageUC,
		setPriorityUC:   setPriorityUC,
		closeUC:         closeUC,
		deleteUC:        deleteUC,
		deleteMessageUC: deleteMessageUC,
		statsUC:         statsUC,
		logger:          logger,
	}
}

func (h *TicketHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketsCommand{})
	if err != nil {
		h.logger.Errorw("failed to list tickets", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketCommand{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketHandler) GetMessages(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getMessagesUC.Execute(c.Request.Context(), usecases.GetMessagesCommand{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type postMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// PostMessage records a staff reply from the dashboard. The author is the
// authenticated session, never the request body.
func (h *TicketHandler) PostMessage(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "message is required")
		return
	}

	cmd := usecases.PostMessageCommand{
		TicketID:       ticketID,
		AuthorID:       c.GetString(middleware.ContextKeyDiscordID),
		AuthorUsername: c.GetString(middleware.ContextKeyUsername),
		Body:           req.Message,
		FromStaff:      true,
	}

	result, err := h.postMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "message posted", result)
}

type setPriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

func (h *TicketHandler) SetPriority(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req setPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "priority is required")
		return
	}

	result, err := h.setPriorityUC.Execute(c.Request.Context(), usecases.SetPriorityCommand{
		TicketID: ticketID,
		Priority: req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "priority updated", result)
}

func (h *TicketHandler) Close(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.closeUC.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		TicketID: ticketID,
		ClosedBy: c.GetString(middleware.ContextKeyDiscordID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket closed", result)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: ticketID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket deleted", nil)
}

func (h *TicketHandler) DeleteMessage(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	messageID, err := utils.ParseUintParam(c, "message_id", "message")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteMessageUC.Execute(c.Request.Context(), usecases.DeleteMessageCommand{
		TicketID:  ticketID,
		MessageID: messageID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "message deleted", nil)
}

func (h *TicketHandler) Stats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context(), usecases.GetTicketStatsCommand{})
	if err != nil {
		h.logger.Errorw("failed to compute ticket stats", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
