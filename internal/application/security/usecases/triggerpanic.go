package usecases

import (
	"context"
	"fmt"
	"time"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/condominium"
	"genturix/internal/domain/notification"
	"genturix/internal/domain/panicalert"
	"genturix/internal/domain/user"
	"genturix/internal/infrastructure/email"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
	notificationusecases "genturix/internal/application/notification/usecases"
)

type TriggerPanicCommand struct {
	CondominiumID uint
	UserID        uint
	PanicType     string
	Location      string
	Latitude      *float64
	Longitude     *float64
	Description   string

	ActorUUID string
	IPAddress string
	UserAgent string
}

type TriggerPanicResult struct {
	EventUUID string
	Status    panicalert.Status
	CreatedAt time.Time
}

// TriggerPanicUseCase records a life-safety alert and alarms the tenant's
// guards and admins. The route is exempt from module gating and the
// downstream deliveries are best effort: once the event row is persisted the
// trigger succeeds no matter what the notification channels do.
type TriggerPanicUseCase struct {
	panicRepo panicalert.Repository
	condoRepo condominium.Repository
	userRepo  user.Repository
	fanout    *notificationusecases.Fanout
	mailer    email.Service
	recorder  *auditusecases.Recorder
	logger    logger.Interface
}

func NewTriggerPanicUseCase(
	panicRepo panicalert.Repository,
	condoRepo condominium.Repository,
	userRepo user.Repository,
	fanout *notificationusecases.Fanout,
	mailer email.Service,
	recorder *auditusecases.Recorder,
	log logger.Interface,
) *TriggerPanicUseCase {
	return &TriggerPanicUseCase{
		panicRepo: panicRepo,
		condoRepo: condoRepo,
		userRepo:  userRepo,
		fanout:    fanout,
		mailer:    mailer,
		recorder:  recorder,
		logger:    log,
	}
}

func (uc *TriggerPanicUseCase) Execute(ctx context.Context, cmd TriggerPanicCommand) (*TriggerPanicResult, error) {
	event, err := panicalert.NewEvent(
		cmd.CondominiumID,
		cmd.UserID,
		cmd.PanicType,
		cmd.Location,
		cmd.Latitude,
		cmd.Longitude,
		cmd.Description,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.panicRepo.Create(ctx, event); err != nil {
		uc.logger.Errorw("failed to persist panic event", "error", err)
		return nil, fmt.Errorf("failed to persist panic event: %w", err)
	}

	// Everything past this point is best effort.
	uc.alarm(ctx, event)

	condoID := cmd.CondominiumID
	uc.recorder.Record(ctx, audit.EventPanicTriggered, cmd.ActorUUID, &condoID,
		fmt.Sprintf("panic_event/%s", event.UUID()),
		fmt.Sprintf("panic %s triggered at %s", event.PanicType(), event.Location()),
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("panic triggered",
		"event_uuid", event.UUID(),
		"condominium_id", cmd.CondominiumID,
		"panic_type", event.PanicType())

	return &TriggerPanicResult{
		EventUUID: event.UUID(),
		Status:    event.Status(),
		CreatedAt: event.CreatedAt(),
	}, nil
}

func (uc *TriggerPanicUseCase) alarm(ctx context.Context, event *panicalert.Event) {
	if err := uc.fanout.NotifyGuards(ctx, event.CondominiumID(),
		notification.TypePanicAlert,
		"Alerta de pánico",
		fmt.Sprintf("Alerta %s en %s", event.PanicType(), event.Location()),
		map[string]string{
			"event_id":   event.UUID(),
			"panic_type": event.PanicType(),
			"location":   event.Location(),
		},
	); err != nil {
		uc.logger.Errorw("panic guard fan-out failed", "event_uuid", event.UUID(), "error", err)
	}

	condoName := ""
	if condo, err := uc.condoRepo.GetByID(ctx, event.CondominiumID()); err != nil {
		uc.logger.Errorw("failed to resolve condominium for panic email", "error", err)
	} else if condo != nil {
		condoName = condo.Name()
	}

	condoID := event.CondominiumID()
	admins, _, err := uc.userRepo.List(ctx, user.ListFilter{
		Page:          1,
		PageSize:      100,
		CondominiumID: &condoID,
		Role:          "admin",
		ActiveOnly:    true,
	})
	if err != nil {
		uc.logger.Errorw("failed to list admins for panic email", "error", err)
		return
	}
	for _, admin := range admins {
		if err := uc.mailer.SendPanicAlertEmail(admin.Email(), condoName, event.PanicType(), event.Location()); err != nil {
			uc.logger.Errorw("panic alert email failed", "recipient", admin.Email(), "error", err)
		}
	}
}
