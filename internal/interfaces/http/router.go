package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	visitorusecases "genturix/internal/application/visitor/usecases"
	"genturix/internal/domain/condominium"
	"genturix/internal/infrastructure/config"
	"genturix/internal/interfaces/http/middleware"
	"genturix/internal/shared/authorization"
	"genturix/internal/shared/logger"
)

// validPlate accepts an empty plate; format rules only apply once a plate is
// present. Normalization happens in the use case, so spacing and case are
// forgiven here.
func validPlate(fl validator.FieldLevel) bool {
	plate := visitorusecases.NormalizePlate(fl.Field().String())
	return plate == "" || visitorusecases.ValidPlate(plate)
}

// Router owns the gin engine and the route table.
type Router struct {
	engine    *gin.Engine
	container *Container
}

func NewRouter(container *Container, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("plate", validPlate)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	return &Router{
		engine:    engine,
		container: container,
	}
}

// SetupRoutes registers the full route table. Everything below /api except
// login, refresh and health requires a valid access token; role checks go
// through the policy store and tenant features through the module gate.
func (r *Router) SetupRoutes() {
	c := r.container
	requireAuth := c.AuthMiddleware.RequireAuth()
	perm := c.PermissionMiddleware
	gate := c.ModuleGate

	api := r.engine.Group("/api")

	api.GET("/health", c.HealthHandler.Health)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", c.AuthHandler.Login)
		authGroup.POST("/refresh", c.AuthHandler.Refresh)
	}

	system := api.Group("/system", requireAuth)
	{
		system.GET("/email-status", perm.RequireRole(authorization.RoleSuperAdmin), c.SystemHandler.EmailStatus)
	}

	users := api.Group("/users", requireAuth)
	{
		users.POST("", perm.RequirePermission("user", "create"), c.UserHandler.Create)
		users.GET("", perm.RequirePermission("user", "read"), c.UserHandler.List)
		users.PATCH("/:id/deactivate", perm.RequirePermission("user", "update"), c.UserHandler.Deactivate)
	}

	condos := api.Group("/condominiums", requireAuth)
	{
		condos.POST("", perm.RequirePermission("condominium", "create"), c.CondominiumHandler.Create)
		condos.GET("", perm.RequirePermission("condominium", "read"), c.CondominiumHandler.List)
		condos.PATCH("/:id/modules/:module_name", perm.RequirePermission("module", "toggle"), c.CondominiumHandler.ToggleModule)
	}

	// The panic trigger stays reachable when the security module is off.
	// A disabled dashboard must never silence a life-safety alert.
	security := api.Group("/security", requireAuth)
	{
		security.POST("/panic", perm.RequirePermission("panic", "create"), c.SecurityHandler.TriggerPanic)

		gated := security.Group("", gate.Require(condominium.ModuleSecurity))
		{
			gated.GET("/panic-events", perm.RequirePermission("panic", "read"), c.SecurityHandler.ListPanicEvents)
			gated.PUT("/panic/:id/resolve", perm.RequirePermission("panic", "resolve"), c.SecurityHandler.ResolvePanic)
		}
	}

	authorizations := api.Group("/authorizations", requireAuth, gate.Require(condominium.ModuleVisitors))
	{
		authorizations.POST("", perm.RequirePermission("authorization", "create"), c.VisitorHandler.CreateAuthorization)
		authorizations.GET("/my", perm.RequirePermission("authorization", "read"), c.VisitorHandler.ListMyAuthorizations)
		authorizations.DELETE("/:id", perm.RequirePermission("authorization", "delete"), c.VisitorHandler.DeleteAuthorization)
	}

	guard := api.Group("/guard", requireAuth, gate.Require(condominium.ModuleVisitors))
	{
		guard.POST("/checkin", perm.RequirePermission("visitor_entry", "create"), c.VisitorHandler.CheckIn)
		guard.POST("/checkout/:id", perm.RequirePermission("visitor_entry", "update"), c.VisitorHandler.CheckOut)
		guard.GET("/visitors-inside", perm.RequirePermission("visitor_entry", "read"), c.VisitorHandler.VisitorsInside)
		guard.GET("/entries-today", perm.RequirePermission("visitor_entry", "read"), c.VisitorHandler.EntriesToday)
		guard.GET("/history", perm.RequirePermission("visitor_entry", "read"), c.VisitorHandler.History)
	}

	shifts := api.Group("/shifts", requireAuth)
	{
		shifts.POST("", perm.RequirePermission("shift", "create"), c.ShiftHandler.Create)
		shifts.GET("", perm.RequirePermission("shift", "read"), c.ShiftHandler.List)
		shifts.PUT("/:id/cancel", perm.RequirePermission("shift", "cancel"), c.ShiftHandler.Cancel)
	}

	hr := api.Group("/hr", requireAuth, gate.Require(condominium.ModuleHR))
	{
		hr.POST("/clock-in", perm.RequirePermission("attendance", "create"), c.HRHandler.ClockIn)
		hr.POST("/clock-out", perm.RequirePermission("attendance", "create"), c.HRHandler.ClockOut)
		hr.GET("/attendance", perm.RequirePermission("attendance", "read"), c.HRHandler.ListAttendance)
		hr.POST("/absences", perm.RequirePermission("absence", "create"), c.HRHandler.RequestAbsence)
		hr.GET("/absences", perm.RequirePermission("absence", "read"), c.HRHandler.ListAbsences)
		hr.PUT("/absences/:id/decide", perm.RequirePermission("absence", "decide"), c.HRHandler.DecideAbsence)
	}

	billing := api.Group("/billing", requireAuth)
	{
		billing.GET("/condominiums/:id/preview", perm.RequirePermission("billing", "read"), c.BillingHandler.Preview)
		billing.GET("/condominiums/:id/ledger", perm.RequirePermission("billing", "read"), c.BillingHandler.ListLedger)
		billing.POST("/request-seat-upgrade", perm.RequirePermission("seat_upgrade", "create"), c.BillingHandler.RequestSeatUpgrade)
		billing.GET("/seat-upgrades", perm.RequirePermission("seat_upgrade", "read"), c.BillingHandler.ListSeatUpgrades)
		billing.PATCH("/approve-seat-upgrade/:id", perm.RequirePermission("seat_upgrade", "decide"), c.BillingHandler.DecideSeatUpgrade)
		billing.POST("/condominiums/:id/payments", perm.RequirePermission("billing", "confirm"), c.BillingHandler.ConfirmPayment)

		scheduler := billing.Group("/scheduler", perm.RequirePermission("billing", "run"))
		{
			scheduler.POST("/run-now", c.BillingHandler.SchedulerRunNow)
			scheduler.GET("/history", c.BillingHandler.SchedulerHistory)
			scheduler.GET("/status", c.BillingHandler.SchedulerStatus)
		}
	}

	superAdmin := api.Group("/super-admin", requireAuth)
	{
		superAdmin.GET("/pricing/global", perm.RequirePermission("pricing", "read"), c.BillingHandler.GetGlobalPricing)
		superAdmin.PUT("/pricing/global", perm.RequirePermission("pricing", "update"), c.BillingHandler.SetGlobalPricing)
		superAdmin.GET("/pricing/condominiums", perm.RequirePermission("pricing", "read"), c.BillingHandler.ListCondominiumPricing)
		superAdmin.PATCH("/condominiums/:id/pricing", perm.RequirePermission("pricing", "update"), c.BillingHandler.SetPriceOverride)
	}

	audit := api.Group("/audit", requireAuth)
	{
		audit.GET("/export", perm.RequirePermission("audit", "export"), c.AuditHandler.ExportReport)
	}

	notifications := api.Group("/notifications", requireAuth)
	{
		notifications.GET("", perm.RequirePermission("notification", "read"), c.NotificationHandler.List)
		notifications.PUT("/:id/read", perm.RequirePermission("notification", "update"), c.NotificationHandler.MarkRead)
	}
}

// Engine returns the gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
