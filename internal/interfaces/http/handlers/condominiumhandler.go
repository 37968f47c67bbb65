package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"genturix/internal/shared/utils"

	condousecases "genturix/internal/application/condominium/usecases"
)

type CondominiumHandler struct {
	createUseCase *condousecases.CreateCondominiumUseCase
	listUseCase   *condousecases.ListCondominiumsUseCase
	toggleUseCase *condousecases.ToggleModuleUseCase
}

func NewCondominiumHandler(
	createUseCase *condousecases.CreateCondominiumUseCase,
	listUseCase *condousecases.ListCondominiumsUseCase,
	toggleUseCase *condousecases.ToggleModuleUseCase,
) *CondominiumHandler {
	return &CondominiumHandler{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		toggleUseCase: toggleUseCase,
	}
}

type createCondominiumRequest struct {
	Name      string `json:"name" binding:"required"`
	SeatCount int    `json:"seat_count" binding:"required,min=1"`
	Currency  string `json:"currency"`
}

func (h *CondominiumHandler) Create(c *gin.Context) {
	var req createCondominiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), condousecases.CreateCondominiumCommand{
		Name:      req.Name,
		SeatCount: req.SeatCount,
		Currency:  req.Currency,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": result.CondominiumUUID}, "condominium created")
}

func (h *CondominiumHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), condousecases.ListCondominiumsCommand{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Condominiums, result.Total, p.Page, p.PageSize)
}

func (h *CondominiumHandler) ToggleModule(c *gin.Context) {
	enabled, err := strconv.ParseBool(c.Query("enabled"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "enabled must be true or false")
		return
	}

	result, err := h.toggleUseCase.Execute(c.Request.Context(), condousecases.ToggleModuleCommand{
		CondominiumUUID: c.Param("id"),
		ModuleName:      c.Param("module_name"),
		Enabled:         enabled,
		ActorUUID:       currentUserUUID(c),
		IPAddress:       c.ClientIP(),
		UserAgent:       c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "module updated", gin.H{
		"module":  result.ModuleName,
		"enabled": result.Enabled,
	})
}
