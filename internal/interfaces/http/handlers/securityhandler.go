package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genturix/internal/shared/utils"

	securityusecases "genturix/internal/application/security/usecases"
)

type SecurityHandler struct {
	triggerUseCase *securityusecases.TriggerPanicUseCase
	listUseCase    *securityusecases.ListPanicEventsUseCase
	resolveUseCase *securityusecases.ResolvePanicUseCase
}

func NewSecurityHandler(
	triggerUseCase *securityusecases.TriggerPanicUseCase,
	listUseCase *securityusecases.ListPanicEventsUseCase,
	resolveUseCase *securityusecases.ResolvePanicUseCase,
) *SecurityHandler {
	return &SecurityHandler{
		triggerUseCase: triggerUseCase,
		listUseCase:    listUseCase,
		resolveUseCase: resolveUseCase,
	}
}

type triggerPanicRequest struct {
	PanicType   string   `json:"panic_type" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description string   `json:"description"`
}

func (h *SecurityHandler) TriggerPanic(c *gin.Context) {
	var req triggerPanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.triggerUseCase.Execute(c.Request.Context(), securityusecases.TriggerPanicCommand{
		CondominiumID: requireTenant(c),
		UserID:        currentUserID(c),
		PanicType:     req.PanicType,
		Location:      req.Location,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Description:   req.Description,
		ActorUUID:     currentUserUUID(c),
		IPAddress:     c.ClientIP(),
		UserAgent:     c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "panic alert triggered", gin.H{
		"id":         result.EventUUID,
		"status":     result.Status,
		"created_at": result.CreatedAt,
	})
}

func (h *SecurityHandler) ListPanicEvents(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), securityusecases.ListPanicEventsCommand{
		CondominiumID: requireTenant(c),
		ActiveOnly:    c.Query("active") == "true",
		Page:          p.Page,
		PageSize:      p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Events, result.Total, p.Page, p.PageSize)
}

type resolvePanicRequest struct {
	Notes string `json:"notes"`
}

func (h *SecurityHandler) ResolvePanic(c *gin.Context) {
	var req resolvePanicRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}
	}

	result, err := h.resolveUseCase.Execute(c.Request.Context(), securityusecases.ResolvePanicCommand{
		EventUUID:     c.Param("id"),
		CondominiumID: requireTenant(c),
		ResolvedBy:    currentUserID(c),
		Notes:         req.Notes,
		ActorUUID:     currentUserUUID(c),
		IPAddress:     c.ClientIP(),
		UserAgent:     c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "panic event resolved", result.Event)
}
