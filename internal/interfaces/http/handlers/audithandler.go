package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"genturix/internal/shared/utils"

	auditusecases "genturix/internal/application/audit/usecases"
)

type AuditHandler struct {
	exportUseCase *auditusecases.ExportReportUseCase
}

func NewAuditHandler(exportUseCase *auditusecases.ExportReportUseCase) *AuditHandler {
	return &AuditHandler{exportUseCase: exportUseCase}
}

// ExportReport streams the audit log as a PDF attachment. Admins get their
// tenant's slice, SuperAdmins everything.
func (h *AuditHandler) ExportReport(c *gin.Context) {
	var fromDate, toDate time.Time
	if raw := c.Query("from_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "from_date must be YYYY-MM-DD")
			return
		}
		fromDate = t
	}
	if raw := c.Query("to_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "to_date must be YYYY-MM-DD")
			return
		}
		// to_date is inclusive: extend to the end of the day.
		toDate = t.Add(24 * time.Hour)
	}

	result, err := h.exportUseCase.Execute(c.Request.Context(), auditusecases.ExportReportCommand{
		RequesterRoles: currentRoles(c),
		CondominiumID:  currentCondominiumID(c),
		EventType:      c.Query("event_type"),
		FromDate:       fromDate,
		ToDate:         toDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
