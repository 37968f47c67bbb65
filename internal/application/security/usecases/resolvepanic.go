package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/panicalert"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
)

type ResolvePanicCommand struct {
	EventUUID     string
	CondominiumID uint
	ResolvedBy    uint
	Notes         string

	ActorUUID string
	IPAddress string
	UserAgent string
}

type ResolvePanicResult struct {
	Event PanicEventView
}

// ResolvePanicUseCase closes an active alert with resolution notes.
type ResolvePanicUseCase struct {
	panicRepo panicalert.Repository
	recorder  *auditusecases.Recorder
	logger    logger.Interface
}

func NewResolvePanicUseCase(panicRepo panicalert.Repository, recorder *auditusecases.Recorder, log logger.Interface) *ResolvePanicUseCase {
	return &ResolvePanicUseCase{
		panicRepo: panicRepo,
		recorder:  recorder,
		logger:    log,
	}
}

func (uc *ResolvePanicUseCase) Execute(ctx context.Context, cmd ResolvePanicCommand) (*ResolvePanicResult, error) {
	event, err := uc.panicRepo.GetByUUID(ctx, cmd.EventUUID)
	if err != nil {
		uc.logger.Errorw("failed to get panic event", "error", err)
		return nil, fmt.Errorf("failed to get panic event: %w", err)
	}
	if event == nil || event.CondominiumID() != cmd.CondominiumID {
		return nil, errors.NewNotFoundError("panic event not found")
	}

	if err := event.Resolve(cmd.ResolvedBy, cmd.Notes); err != nil {
		if stderrors.Is(err, panicalert.ErrAlreadyResolved) {
			return nil, errors.NewConflictError("panic event already resolved")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.panicRepo.Update(ctx, event); err != nil {
		uc.logger.Errorw("failed to update panic event", "event_uuid", cmd.EventUUID, "error", err)
		return nil, fmt.Errorf("failed to update panic event: %w", err)
	}

	condoID := cmd.CondominiumID
	uc.recorder.Record(ctx, audit.EventPanicResolved, cmd.ActorUUID, &condoID,
		fmt.Sprintf("panic_event/%s", event.UUID()),
		fmt.Sprintf("panic %s resolved", event.PanicType()),
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("panic resolved",
		"event_uuid", event.UUID(),
		"condominium_id", cmd.CondominiumID)

	return &ResolvePanicResult{Event: toPanicEventView(event)}, nil
}
