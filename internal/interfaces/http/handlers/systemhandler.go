package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genturix/internal/infrastructure/email"
	"genturix/internal/shared/utils"
)

// SystemHandler exposes operational status for platform operators.
type SystemHandler struct {
	mailer email.Service
}

func NewSystemHandler(mailer email.Service) *SystemHandler {
	return &SystemHandler{mailer: mailer}
}

func (h *SystemHandler) EmailStatus(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.mailer.Status())
}
