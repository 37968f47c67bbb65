package http

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"genturix/internal/domain/billing"
	"genturix/internal/infrastructure/auth"
	"genturix/internal/infrastructure/config"
	"genturix/internal/infrastructure/email"
	"genturix/internal/infrastructure/pdf"
	"genturix/internal/infrastructure/permission"
	"genturix/internal/infrastructure/ratelimit"
	"genturix/internal/infrastructure/repository"
	"genturix/internal/infrastructure/scheduler"
	"genturix/internal/interfaces/http/handlers"
	"genturix/internal/interfaces/http/middleware"
	"genturix/internal/shared/authorization"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
	authusecases "genturix/internal/application/auth/usecases"
	billingusecases "genturix/internal/application/billing/usecases"
	condousecases "genturix/internal/application/condominium/usecases"
	hrusecases "genturix/internal/application/hr/usecases"
	notificationusecases "genturix/internal/application/notification/usecases"
	securityusecases "genturix/internal/application/security/usecases"
	shiftusecases "genturix/internal/application/shift/usecases"
	userusecases "genturix/internal/application/user/usecases"
	visitorusecases "genturix/internal/application/visitor/usecases"
)

// Container wires repositories, use cases, handlers and middleware. It is
// built once at startup; everything in it is safe for concurrent use.
type Container struct {
	AuthHandler         *handlers.AuthHandler
	UserHandler         *handlers.UserHandler
	CondominiumHandler  *handlers.CondominiumHandler
	VisitorHandler      *handlers.VisitorHandler
	SecurityHandler     *handlers.SecurityHandler
	ShiftHandler        *handlers.ShiftHandler
	HRHandler           *handlers.HRHandler
	BillingHandler      *handlers.BillingHandler
	AuditHandler        *handlers.AuditHandler
	NotificationHandler *handlers.NotificationHandler
	HealthHandler       *handlers.HealthHandler
	SystemHandler       *handlers.SystemHandler

	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	ModuleGate           *middleware.ModuleGate

	BillingScheduler *scheduler.BillingScheduler
}

// tokenServiceAdapter bridges the JWT service to the auth use case
// interface, which carries its own token pair type.
type tokenServiceAdapter struct {
	jwt *auth.JWTService
}

func (a tokenServiceAdapter) Generate(userUUID string, roles []authorization.UserRole, condominiumID *uint) (*authusecases.TokenPair, error) {
	pair, err := a.jwt.Generate(userUUID, roles, condominiumID)
	if err != nil {
		return nil, err
	}
	return &authusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func NewContainer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) (*Container, error) {
	// Repositories.
	userRepo := repository.NewUserRepository(db)
	condoRepo := repository.NewCondominiumRepository(db)
	authorizationRepo := repository.NewAuthorizationRepository(db)
	entryRepo := repository.NewEntryRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	absenceRepo := repository.NewAbsenceRepository(db)
	panicRepo := repository.NewPanicEventRepository(db)
	pricingRepo := repository.NewPricingRepository(db, billing.GlobalPricing{
		SeatPriceCents: cfg.Billing.DefaultSeatPrice,
		Currency:       cfg.Billing.Currency,
	})
	upgradeRepo := repository.NewUpgradeRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Infrastructure services.
	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	loginLimiter := ratelimit.NewRedisLoginLimiter(
		redisClient,
		cfg.Auth.LoginLimit.MaxAttempts,
		cfg.Auth.LoginLimit.WindowSeconds,
		log.Named("ratelimit"),
	)
	mailer := email.NewSMTPService(cfg.Email, log.Named("email"))
	reportBuilder := pdf.NewAuditReportBuilder()

	enforcer, err := permission.NewEnforcer(db, cfg.RBAC.ModelPath, log.Named("rbac"))
	if err != nil {
		return nil, fmt.Errorf("failed to build enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return nil, fmt.Errorf("failed to seed policies: %w", err)
	}

	billingScheduler := scheduler.NewBillingScheduler(
		condoRepo,
		pricingRepo,
		ledgerRepo,
		cfg.Billing.RunIntervalHours,
		log.Named("scheduler"),
	)

	// Shared application services.
	recorder := auditusecases.NewRecorder(auditRepo, log.Named("audit"))
	fanout := notificationusecases.NewFanout(notificationRepo, userRepo, log.Named("notify"))
	tokens := tokenServiceAdapter{jwt: jwtService}

	// Use cases.
	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, tokens, loginLimiter, recorder, log)
	refreshUC := authusecases.NewRefreshTokenUseCase(userRepo, jwtService, tokens, log)

	createUserUC := userusecases.NewCreateUserUseCase(userRepo, condoRepo, hasher, mailer, recorder, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	deactivateUserUC := userusecases.NewDeactivateUserUseCase(userRepo, recorder, log)

	createCondoUC := condousecases.NewCreateCondominiumUseCase(condoRepo, log)
	listCondosUC := condousecases.NewListCondominiumsUseCase(condoRepo, log)
	toggleModuleUC := condousecases.NewToggleModuleUseCase(condoRepo, recorder, log)

	createAuthUC := visitorusecases.NewCreateAuthorizationUseCase(authorizationRepo, fanout, recorder, log)
	deleteAuthUC := visitorusecases.NewDeleteAuthorizationUseCase(authorizationRepo, recorder, log)
	listMyAuthUC := visitorusecases.NewListMyAuthorizationsUseCase(authorizationRepo, log)
	checkInUC := visitorusecases.NewCheckInUseCase(authorizationRepo, entryRepo, recorder, log)
	checkOutUC := visitorusecases.NewCheckOutUseCase(entryRepo, recorder, log)
	insideUC := visitorusecases.NewVisitorsInsideUseCase(entryRepo, log)
	todayUC := visitorusecases.NewEntriesTodayUseCase(entryRepo, log)
	historyUC := visitorusecases.NewEntryHistoryUseCase(entryRepo, log)

	triggerPanicUC := securityusecases.NewTriggerPanicUseCase(panicRepo, condoRepo, userRepo, fanout, mailer, recorder, log)
	listPanicUC := securityusecases.NewListPanicEventsUseCase(panicRepo, log)
	resolvePanicUC := securityusecases.NewResolvePanicUseCase(panicRepo, recorder, log)

	createShiftUC := shiftusecases.NewCreateShiftUseCase(shiftRepo, userRepo, log)
	cancelShiftUC := shiftusecases.NewCancelShiftUseCase(shiftRepo, recorder, log)
	listShiftsUC := shiftusecases.NewListShiftsUseCase(shiftRepo, log)

	clockInUC := hrusecases.NewClockInUseCase(attendanceRepo, log)
	clockOutUC := hrusecases.NewClockOutUseCase(attendanceRepo, log)
	requestAbsenceUC := hrusecases.NewRequestAbsenceUseCase(absenceRepo, log)
	decideAbsenceUC := hrusecases.NewDecideAbsenceUseCase(absenceRepo, log)
	listAttendanceUC := hrusecases.NewListAttendanceUseCase(attendanceRepo, log)
	listAbsencesUC := hrusecases.NewListAbsencesUseCase(absenceRepo, log)

	previewUC := billingusecases.NewCalculatePreviewUseCase(condoRepo, pricingRepo, ledgerRepo, log)
	requestUpgradeUC := billingusecases.NewRequestSeatUpgradeUseCase(upgradeRepo, log)
	decideUpgradeUC := billingusecases.NewDecideSeatUpgradeUseCase(upgradeRepo, condoRepo, ledgerRepo, recorder, log)
	listUpgradesUC := billingusecases.NewListSeatUpgradesUseCase(upgradeRepo, log)
	confirmPaymentUC := billingusecases.NewConfirmPaymentUseCase(condoRepo, ledgerRepo, recorder, log)
	getGlobalPricingUC := billingusecases.NewGetGlobalPricingUseCase(pricingRepo, log)
	setGlobalPricingUC := billingusecases.NewSetGlobalPricingUseCase(pricingRepo, recorder, log)
	setPriceOverrideUC := billingusecases.NewSetPriceOverrideUseCase(condoRepo, pricingRepo, recorder, log)
	listCondoPricingUC := billingusecases.NewListCondominiumPricingUseCase(condoRepo, pricingRepo, log)
	listLedgerUC := billingusecases.NewListLedgerUseCase(condoRepo, ledgerRepo, log)

	exportReportUC := auditusecases.NewExportReportUseCase(auditRepo, reportBuilder, log)

	listNotificationsUC := notificationusecases.NewListNotificationsUseCase(notificationRepo, log)
	markReadUC := notificationusecases.NewMarkReadUseCase(notificationRepo, log)

	return &Container{
		AuthHandler:        handlers.NewAuthHandler(loginUC, refreshUC),
		UserHandler:        handlers.NewUserHandler(createUserUC, listUsersUC, deactivateUserUC),
		CondominiumHandler: handlers.NewCondominiumHandler(createCondoUC, listCondosUC, toggleModuleUC),
		VisitorHandler: handlers.NewVisitorHandler(
			createAuthUC, deleteAuthUC, listMyAuthUC,
			checkInUC, checkOutUC, insideUC, todayUC, historyUC,
		),
		SecurityHandler: handlers.NewSecurityHandler(triggerPanicUC, listPanicUC, resolvePanicUC),
		ShiftHandler:    handlers.NewShiftHandler(createShiftUC, cancelShiftUC, listShiftsUC),
		HRHandler: handlers.NewHRHandler(
			clockInUC, clockOutUC, requestAbsenceUC,
			decideAbsenceUC, listAttendanceUC, listAbsencesUC,
		),
		BillingHandler: handlers.NewBillingHandler(
			previewUC, requestUpgradeUC, decideUpgradeUC, listUpgradesUC,
			confirmPaymentUC, getGlobalPricingUC, setGlobalPricingUC,
			setPriceOverrideUC, listCondoPricingUC, listLedgerUC, billingScheduler,
		),
		AuditHandler:        handlers.NewAuditHandler(exportReportUC),
		NotificationHandler: handlers.NewNotificationHandler(listNotificationsUC, markReadUC),
		HealthHandler:       handlers.NewHealthHandler(),
		SystemHandler:       handlers.NewSystemHandler(mailer),

		AuthMiddleware:       middleware.NewAuthMiddleware(jwtService, userRepo, log.Named("auth")),
		PermissionMiddleware: middleware.NewPermissionMiddleware(enforcer, log.Named("rbac")),
		ModuleGate:           middleware.NewModuleGate(condoRepo, log.Named("modulegate")),

		BillingScheduler: billingScheduler,
	}, nil
}
