package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tlogi/internal/application/ticket/usecases"
	"tlogi/internal/shared/utils"
)

// TranscriptHandler serves closed-ticket transcripts by public token.
// The route is unauthenticated; the token itself is the capability.
type TranscriptHandler struct {
	getTranscriptUC usecases.GetPublicTranscriptExecutor
}

func NewTranscriptHandler(getTranscriptUC usecases.GetPublicTranscriptExecutor) *TranscriptHandler {
	return &TranscriptHandler{getTranscriptUC: getTranscriptUC}
}

func (h *TranscriptHandler) Get(c *gin.Context) {
	token := c.Param("token")

	result, err := h.getTranscriptUC.Execute(c.Request.Context(), usecases.GetPublicTranscriptCommand{Token: token})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
