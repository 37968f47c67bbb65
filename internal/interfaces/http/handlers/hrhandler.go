package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"genturix/internal/shared/utils"

	hrusecases "genturix/internal/application/hr/usecases"
)

type HRHandler struct {
	clockInUseCase        *hrusecases.ClockInUseCase
	clockOutUseCase       *hrusecases.ClockOutUseCase
	requestAbsenceUseCase *hrusecases.RequestAbsenceUseCase
	decideAbsenceUseCase  *hrusecases.DecideAbsenceUseCase
	listAttendanceUseCase *hrusecases.ListAttendanceUseCase
	listAbsencesUseCase   *hrusecases.ListAbsencesUseCase
}

func NewHRHandler(
	clockInUseCase *hrusecases.ClockInUseCase,
	clockOutUseCase *hrusecases.ClockOutUseCase,
	requestAbsenceUseCase *hrusecases.RequestAbsenceUseCase,
	decideAbsenceUseCase *hrusecases.DecideAbsenceUseCase,
	listAttendanceUseCase *hrusecases.ListAttendanceUseCase,
	listAbsencesUseCase *hrusecases.ListAbsencesUseCase,
) *HRHandler {
	return &HRHandler{
		clockInUseCase:        clockInUseCase,
		clockOutUseCase:       clockOutUseCase,
		requestAbsenceUseCase: requestAbsenceUseCase,
		decideAbsenceUseCase:  decideAbsenceUseCase,
		listAttendanceUseCase: listAttendanceUseCase,
		listAbsencesUseCase:   listAbsencesUseCase,
	}
}

type clockInRequest struct {
	Notes string `json:"notes"`
}

func (h *HRHandler) ClockIn(c *gin.Context) {
	var req clockInRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}
	}

	result, err := h.clockInUseCase.Execute(c.Request.Context(), hrusecases.ClockInCommand{
		CondominiumID: requireTenant(c),
		UserID:        currentUserID(c),
		Notes:         req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "clocked in", result.Attendance)
}

func (h *HRHandler) ClockOut(c *gin.Context) {
	result, err := h.clockOutUseCase.Execute(c.Request.Context(), hrusecases.ClockOutCommand{
		UserID: currentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "clocked out", gin.H{"clock_out_at": result.ClockOutAt})
}

type requestAbsenceRequest struct {
	FromDate time.Time `json:"from_date" binding:"required"`
	ToDate   time.Time `json:"to_date" binding:"required"`
	Reason   string    `json:"reason" binding:"required"`
}

func (h *HRHandler) RequestAbsence(c *gin.Context) {
	var req requestAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.requestAbsenceUseCase.Execute(c.Request.Context(), hrusecases.RequestAbsenceCommand{
		CondominiumID: requireTenant(c),
		UserID:        currentUserID(c),
		FromDate:      req.FromDate,
		ToDate:        req.ToDate,
		Reason:        req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Absence, "absence requested")
}

type decideAbsenceRequest struct {
	Approved bool   `json:"approved"`
	Notes    string `json:"notes"`
}

func (h *HRHandler) DecideAbsence(c *gin.Context) {
	var req decideAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.decideAbsenceUseCase.Execute(c.Request.Context(), hrusecases.DecideAbsenceCommand{
		AbsenceUUID:   c.Param("id"),
		CondominiumID: requireTenant(c),
		DecidedBy:     currentUserID(c),
		Approved:      req.Approved,
		Notes:         req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "absence decided", result.Absence)
}

func (h *HRHandler) ListAttendance(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listAttendanceUseCase.Execute(c.Request.Context(), hrusecases.ListAttendanceCommand{
		CondominiumID: requireTenant(c),
		Page:          p.Page,
		PageSize:      p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Records, result.Total, p.Page, p.PageSize)
}

func (h *HRHandler) ListAbsences(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listAbsencesUseCase.Execute(c.Request.Context(), hrusecases.ListAbsencesCommand{
		CondominiumID: requireTenant(c),
		Page:          p.Page,
		PageSize:      p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Absences, result.Total, p.Page, p.PageSize)
}
