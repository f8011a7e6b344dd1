package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tlogi/internal/application/setting/usecases"
	"tlogi/internal/interfaces/http/middleware"
	"tlogi/internal/shared/logger"
	"tlogi/internal/shared/utils"
)

type SettingHandler struct {
	getSettingsUC usecases.GetSettingsExecutor
	setSiteNameUC usecases.SetSiteNameExecutor
	logger        logger.Interface
}

func NewSettingHandler(
	getSettingsUC usecases.GetSettingsExecutor,
	setSiteNameUC usecases.SetSiteNameExecutor,
	logger logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getSettingsUC: getSettingsUC,
		setSiteNameUC: setSiteNameUC,
		logger:        logger,
	}
}

func (h *SettingHandler) Get(c *gin.Context) {
	result, err := h.getSettingsUC.Execute(c.Request.Context(), usecases.GetSettingsCommand{})
	if err != nil {
		h.logger.Errorw("failed to load settings", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type setSiteNameRequest struct {
	SiteName string `json:"site_name" binding:"required"`
}

// SetSiteName only requires an authenticated session; the use case decides
// whether the caller may rename (first setter bootstraps super admin,
// afterwards super admins only).
func (h *SettingHandler) SetSiteName(c *gin.Context) {
	var req setSiteNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "site_name is required")
		return
	}

	result, err := h.setSiteNameUC.Execute(c.Request.Context(), usecases.SetSiteNameCommand{
		CallerID: c.GetString(middleware.ContextKeyDiscordID),
		SiteName: req.SiteName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "site name updated", result)
}
