package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"genturix/internal/shared/utils"

	visitorusecases "genturix/internal/application/visitor/usecases"
)

type VisitorHandler struct {
	createAuthUseCase *visitorusecases.CreateAuthorizationUseCase
	deleteAuthUseCase *visitorusecases.DeleteAuthorizationUseCase
	listMyAuthUseCase *visitorusecases.ListMyAuthorizationsUseCase
	checkInUseCase    *visitorusecases.CheckInUseCase
	checkOutUseCase   *visitorusecases.CheckOutUseCase
	insideUseCase     *visitorusecases.VisitorsInsideUseCase
	todayUseCase      *visitorusecases.EntriesTodayUseCase
	historyUseCase    *visitorusecases.EntryHistoryUseCase
}

func NewVisitorHandler(
	createAuthUseCase *visitorusecases.CreateAuthorizationUseCase,
	deleteAuthUseCase *visitorusecases.DeleteAuthorizationUseCase,
	listMyAuthUseCase *visitorusecases.ListMyAuthorizationsUseCase,
	checkInUseCase *visitorusecases.CheckInUseCase,
	checkOutUseCase *visitorusecases.CheckOutUseCase,
	insideUseCase *visitorusecases.VisitorsInsideUseCase,
	todayUseCase *visitorusecases.EntriesTodayUseCase,
	historyUseCase *visitorusecases.EntryHistoryUseCase,
) *VisitorHandler {
	return &VisitorHandler{
		createAuthUseCase: createAuthUseCase,
		deleteAuthUseCase: deleteAuthUseCase,
		listMyAuthUseCase: listMyAuthUseCase,
		checkInUseCase:    checkInUseCase,
		checkOutUseCase:   checkOutUseCase,
		insideUseCase:     insideUseCase,
		todayUseCase:      todayUseCase,
		historyUseCase:    historyUseCase,
	}
}

type createAuthorizationRequest struct {
	VisitorName          string     `json:"visitor_name" binding:"required"`
	IdentificationNumber string     `json:"identification_number"`
	VehiclePlate         string     `json:"vehicle_plate" binding:"plate"`
	AuthorizationType    string     `json:"authorization_type" binding:"required"`
	ValidFrom            *time.Time `json:"valid_from"`
	ValidTo              *time.Time `json:"valid_to"`
	Notes                string     `json:"notes"`
}

func (h *VisitorHandler) CreateAuthorization(c *gin.Context) {
	var req createAuthorizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	cmd := visitorusecases.CreateAuthorizationCommand{
		CondominiumID:        requireTenant(c),
		ResidentID:           currentUserID(c),
		VisitorName:          req.VisitorName,
		IdentificationNumber: req.IdentificationNumber,
		VehiclePlate:         req.VehiclePlate,
		AuthorizationType:    req.AuthorizationType,
		Notes:                req.Notes,
		ActorUUID:            currentUserUUID(c),
		IPAddress:            c.ClientIP(),
		UserAgent:            c.Request.UserAgent(),
	}
	if req.ValidFrom != nil {
		cmd.ValidFrom = *req.ValidFrom
	}
	if req.ValidTo != nil {
		cmd.ValidTo = *req.ValidTo
	}

	result, err := h.createAuthUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Authorization, "authorization created")
}

func (h *VisitorHandler) DeleteAuthorization(c *gin.Context) {
	err := h.deleteAuthUseCase.Execute(c.Request.Context(), visitorusecases.DeleteAuthorizationCommand{
		AuthorizationUUID: c.Param("id"),
		CondominiumID:     requireTenant(c),
		ResidentID:        currentUserID(c),
		ActorUUID:         currentUserUUID(c),
		IPAddress:         c.ClientIP(),
		UserAgent:         c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "authorization deleted", nil)
}

func (h *VisitorHandler) ListMyAuthorizations(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listMyAuthUseCase.Execute(c.Request.Context(), visitorusecases.ListMyAuthorizationsCommand{
		ResidentID: currentUserID(c),
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Authorizations, result.Total, p.Page, p.PageSize)
}

type checkInRequest struct {
	AuthorizationID      string `json:"authorization_id"`
	VisitorName          string `json:"visitor_name"`
	IdentificationNumber string `json:"identification_number"`
	VehiclePlate         string `json:"vehicle_plate" binding:"plate"`
	Destination          string `json:"destination"`
	Notes                string `json:"notes"`
}

func (h *VisitorHandler) CheckIn(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.checkInUseCase.Execute(c.Request.Context(), visitorusecases.CheckInCommand{
		CondominiumID:        requireTenant(c),
		GuardID:              currentUserID(c),
		AuthorizationUUID:    req.AuthorizationID,
		VisitorName:          req.VisitorName,
		IdentificationNumber: req.IdentificationNumber,
		VehiclePlate:         req.VehiclePlate,
		Destination:          req.Destination,
		Notes:                req.Notes,
		ActorUUID:            currentUserUUID(c),
		IPAddress:            c.ClientIP(),
		UserAgent:            c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "visitor checked in", result.Entry)
}

type checkOutRequest struct {
	Notes string `json:"notes"`
}

func (h *VisitorHandler) CheckOut(c *gin.Context) {
	var req checkOutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}
	}

	result, err := h.checkOutUseCase.Execute(c.Request.Context(), visitorusecases.CheckOutCommand{
		EntryUUID:     c.Param("id"),
		CondominiumID: requireTenant(c),
		Notes:         req.Notes,
		ActorUUID:     currentUserUUID(c),
		IPAddress:     c.ClientIP(),
		UserAgent:     c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "visitor checked out", result.Entry)
}

func (h *VisitorHandler) VisitorsInside(c *gin.Context) {
	result, err := h.insideUseCase.Execute(c.Request.Context(), visitorusecases.VisitorsInsideCommand{
		CondominiumID: requireTenant(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"visitors": result.Entries, "count": len(result.Entries)})
}

func (h *VisitorHandler) EntriesToday(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.todayUseCase.Execute(c.Request.Context(), visitorusecases.EntriesTodayCommand{
		CondominiumID: requireTenant(c),
		Page:          p.Page,
		PageSize:      p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Entries, result.Total, p.Page, p.PageSize)
}

func (h *VisitorHandler) History(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.historyUseCase.Execute(c.Request.Context(), visitorusecases.EntryHistoryCommand{
		CondominiumID: requireTenant(c),
		Page:          p.Page,
		PageSize:      p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Entries, result.Total, p.Page, p.PageSize)
}
