package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"genturix/internal/shared/utils"

	shiftusecases "genturix/internal/application/shift/usecases"
)

type ShiftHandler struct {
	createUseCase *shiftusecases.CreateShiftUseCase
	cancelUseCase *shiftusecases.CancelShiftUseCase
	listUseCase   *shiftusecases.ListShiftsUseCase
}

func NewShiftHandler(
	createUseCase *shiftusecases.CreateShiftUseCase,
	cancelUseCase *shiftusecases.CancelShiftUseCase,
	listUseCase *shiftusecases.ListShiftsUseCase,
) *ShiftHandler {
	return &ShiftHandler{
		createUseCase: createUseCase,
		cancelUseCase: cancelUseCase,
		listUseCase:   listUseCase,
	}
}

type createShiftRequest struct {
	GuardID   string    `json:"guard_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes"`
}

func (h *ShiftHandler) Create(c *gin.Context) {
	var req createShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), shiftusecases.CreateShiftCommand{
		CondominiumID: requireTenant(c),
		GuardUUID:     req.GuardID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Location:      req.Location,
		Notes:         req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Shift, "shift created")
}

func (h *ShiftHandler) Cancel(c *gin.Context) {
	result, err := h.cancelUseCase.Execute(c.Request.Context(), shiftusecases.CancelShiftCommand{
		ShiftUUID:     c.Param("id"),
		CondominiumID: requireTenant(c),
		ActorUUID:     currentUserUUID(c),
		IPAddress:     c.ClientIP(),
		UserAgent:     c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "shift cancelled", result.Shift)
}

func (h *ShiftHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	cmd := shiftusecases.ListShiftsCommand{
		CondominiumID: requireTenant(c),
		ActiveOnly:    c.Query("active") == "true",
		Page:          p.Page,
		PageSize:      p.PageSize,
	}
	if c.Query("mine") == "true" {
		guardID := currentUserID(c)
		cmd.GuardID = &guardID
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Shifts, result.Total, p.Page, p.PageSize)
}
