package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminUC "tlogi/internal/application/admin/usecases"
	userUC "tlogi/internal/application/user/usecases"
	"tlogi/internal/interfaces/http/middleware"
	"tlogi/internal/shared/logger"
	"tlogi/internal/shared/utils"
)

type AdminHandler struct {
	listUsersUC    userUC.ListUsersExecutor
	setUserRoleUC  userUC.SetUserRoleExecutor
	checkUpdatesUC adminUC.CheckUpdatesExecutor
	logger         logger.Interface
}

func NewAdminHandler(
	listUsersUC userUC.ListUsersExecutor,
	setUserRoleUC userUC.SetUserRoleExecutor,
	checkUpdatesUC adminUC.CheckUpdatesExecutor,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		listUsersUC:    listUsersUC,
		setUserRoleUC:  setUserRoleUC,
		checkUpdatesUC: checkUpdatesUC,
		logger:         logger,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context(), userUC.ListUsersCommand{})
	if err != nil {
		h.logger.Errorw("failed to list users", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type setUserRoleRequest struct {
	Level string `json:"level" binding:"required"`
}

func (h *AdminHandler) SetUserRole(c *gin.Context) {
	discordID := c.Param("discord_id")
	if discordID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "discord_id is required")
		return
	}

	var req setUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "level is required")
		return
	}

	result, err := h.setUserRoleUC.Execute(c.Request.Context(), userUC.SetUserRoleCommand{
		DiscordID: discordID,
		Role:      req.Level,
		GrantedBy: c.GetString(middleware.ContextKeyDiscordID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role updated", result)
}

// CheckUpdates never fails on feed problems; the result carries the feed
// error instead so the dashboard can show the current version regardless.
func (h *AdminHandler) CheckUpdates(c *gin.Context) {
	result, err := h.checkUpdatesUC.Execute(c.Request.Context(), adminUC.CheckUpdatesCommand{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
