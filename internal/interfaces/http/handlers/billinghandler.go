package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"genturix/internal/infrastructure/scheduler"
	"genturix/internal/shared/utils"

	billingusecases "genturix/internal/application/billing/usecases"
)

type BillingHandler struct {
	previewUseCase     *billingusecases.CalculatePreviewUseCase
	requestUpgradeUC   *billingusecases.RequestSeatUpgradeUseCase
	decideUpgradeUC    *billingusecases.DecideSeatUpgradeUseCase
	listUpgradesUC     *billingusecases.ListSeatUpgradesUseCase
	confirmPaymentUC   *billingusecases.ConfirmPaymentUseCase
	getGlobalPricingUC *billingusecases.GetGlobalPricingUseCase
	setGlobalPricingUC *billingusecases.SetGlobalPricingUseCase
	setPriceOverrideUC *billingusecases.SetPriceOverrideUseCase
	listCondoPricingUC *billingusecases.ListCondominiumPricingUseCase
	listLedgerUC       *billingusecases.ListLedgerUseCase
	billingScheduler   *scheduler.BillingScheduler
}

func NewBillingHandler(
	previewUseCase *billingusecases.CalculatePreviewUseCase,
	requestUpgradeUC *billingusecases.RequestSeatUpgradeUseCase,
	decideUpgradeUC *billingusecases.DecideSeatUpgradeUseCase,
	listUpgradesUC *billingusecases.ListSeatUpgradesUseCase,
	confirmPaymentUC *billingusecases.ConfirmPaymentUseCase,
	getGlobalPricingUC *billingusecases.GetGlobalPricingUseCase,
	setGlobalPricingUC *billingusecases.SetGlobalPricingUseCase,
	setPriceOverrideUC *billingusecases.SetPriceOverrideUseCase,
	listCondoPricingUC *billingusecases.ListCondominiumPricingUseCase,
	listLedgerUC *billingusecases.ListLedgerUseCase,
	billingScheduler *scheduler.BillingScheduler,
) *BillingHandler {
	return &BillingHandler{
		previewUseCase:     previewUseCase,
		requestUpgradeUC:   requestUpgradeUC,
		decideUpgradeUC:    decideUpgradeUC,
		listUpgradesUC:     listUpgradesUC,
		confirmPaymentUC:   confirmPaymentUC,
		getGlobalPricingUC: getGlobalPricingUC,
		setGlobalPricingUC: setGlobalPricingUC,
		setPriceOverrideUC: setPriceOverrideUC,
		listCondoPricingUC: listCondoPricingUC,
		listLedgerUC:       listLedgerUC,
		billingScheduler:   billingScheduler,
	}
}

func (h *BillingHandler) Preview(c *gin.Context) {
	result, err := h.previewUseCase.Execute(c.Request.Context(), billingusecases.CalculatePreviewCommand{
		CondominiumUUID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Preview)
}

type requestSeatUpgradeRequest struct {
	RequestedSeats int `json:"requested_seats" binding:"required,min=1"`
}

func (h *BillingHandler) RequestSeatUpgrade(c *gin.Context) {
	var req requestSeatUpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.requestUpgradeUC.Execute(c.Request.Context(), billingusecases.RequestSeatUpgradeCommand{
		CondominiumID:  requireTenant(c),
		RequestedBy:    currentUserID(c),
		RequestedSeats: req.RequestedSeats,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Request, "seat upgrade requested")
}

type decideSeatUpgradeRequest struct {
	Approved bool   `json:"approved"`
	Notes    string `json:"notes"`
}

func (h *BillingHandler) DecideSeatUpgrade(c *gin.Context) {
	var req decideSeatUpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.decideUpgradeUC.Execute(c.Request.Context(), billingusecases.DecideSeatUpgradeCommand{
		RequestUUID: c.Param("id"),
		DecidedBy:   currentUserID(c),
		Approved:    req.Approved,
		Notes:       req.Notes,
		ActorUUID:   currentUserUUID(c),
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "seat upgrade decided", gin.H{
		"request":    result.Request,
		"seat_count": result.SeatCount,
	})
}

func (h *BillingHandler) ListSeatUpgrades(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUpgradesUC.Execute(c.Request.Context(), billingusecases.ListSeatUpgradesCommand{
		CondominiumID: currentCondominiumID(c),
		Page:          p.Page,
		PageSize:      p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, p.Page, p.PageSize)
}

type confirmPaymentRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,min=1"`
	Partial     bool   `json:"partial"`
	Notes       string `json:"notes"`
}

func (h *BillingHandler) ConfirmPayment(c *gin.Context) {
	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.confirmPaymentUC.Execute(c.Request.Context(), billingusecases.ConfirmPaymentCommand{
		CondominiumUUID: c.Param("id"),
		AmountCents:     req.AmountCents,
		Partial:         req.Partial,
		RecordedBy:      currentUserID(c),
		Notes:           req.Notes,
		ActorUUID:       currentUserUUID(c),
		IPAddress:       c.ClientIP(),
		UserAgent:       c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment confirmed", gin.H{
		"balance_cents":  result.BalanceCents,
		"billing_status": result.BillingStatus,
	})
}

func (h *BillingHandler) GetGlobalPricing(c *gin.Context) {
	result, err := h.getGlobalPricingUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"seat_price_cents": result.Pricing.SeatPriceCents,
		"currency":         result.Pricing.Currency,
	})
}

type setGlobalPricingRequest struct {
	SeatPriceCents int64  `json:"seat_price_cents" binding:"required"`
	Currency       string `json:"currency" binding:"required"`
}

func (h *BillingHandler) SetGlobalPricing(c *gin.Context) {
	var req setGlobalPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.setGlobalPricingUC.Execute(c.Request.Context(), billingusecases.SetGlobalPricingCommand{
		SeatPriceCents: req.SeatPriceCents,
		Currency:       req.Currency,
		ActorUUID:      currentUserUUID(c),
		IPAddress:      c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "global pricing updated", gin.H{
		"seat_price_cents": result.Pricing.SeatPriceCents,
		"currency":         result.Pricing.Currency,
	})
}

func (h *BillingHandler) SetPriceOverride(c *gin.Context) {
	priceCents, err := strconv.ParseInt(c.Query("seat_price_override"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "seat_price_override must be an integer amount in cents")
		return
	}

	result, err := h.setPriceOverrideUC.Execute(c.Request.Context(), billingusecases.SetPriceOverrideCommand{
		CondominiumUUID: c.Param("id"),
		SeatPriceCents:  priceCents,
		ActorUUID:       currentUserUUID(c),
		IPAddress:       c.ClientIP(),
		UserAgent:       c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "price override updated", gin.H{
		"effective_price_cents": result.EffectivePriceCents,
		"override_applied":      result.OverrideApplied,
	})
}

func (h *BillingHandler) ListCondominiumPricing(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listCondoPricingUC.Execute(c.Request.Context(), billingusecases.ListCondominiumPricingCommand{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Pricing, result.Total, p.Page, p.PageSize)
}

func (h *BillingHandler) ListLedger(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listLedgerUC.Execute(c.Request.Context(), billingusecases.ListLedgerCommand{
		CondominiumUUID: c.Param("id"),
		Page:            p.Page,
		PageSize:        p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"entries":       result.Entries,
		"balance_cents": result.BalanceCents,
		"total":         result.Total,
	})
}

func (h *BillingHandler) SchedulerRunNow(c *gin.Context) {
	summary, err := h.billingScheduler.RunNow(c.Request.Context(), "manual")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "billing run completed", summary)
}

func (h *BillingHandler) SchedulerHistory(c *gin.Context) {
	p := utils.ParsePagination(c)

	runs, total, err := h.billingScheduler.History(c.Request.Context(), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, runs, total, p.Page, p.PageSize)
}

func (h *BillingHandler) SchedulerStatus(c *gin.Context) {
	status, err := h.billingScheduler.Status(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", status)
}
