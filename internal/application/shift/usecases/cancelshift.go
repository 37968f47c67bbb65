package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/shift"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/i18n"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
)

type CancelShiftCommand struct {
	ShiftUUID     string
	CondominiumID uint

	ActorUUID string
	IPAddress string
	UserAgent string
}

type CancelShiftResult struct {
	Shift ShiftView
}

// CancelShiftUseCase soft-deletes a shift. The record stays in place with
// status cancelled so the schedule history survives.
type CancelShiftUseCase struct {
	shiftRepo shift.Repository
	recorder  *auditusecases.Recorder
	logger    logger.Interface
}

func NewCancelShiftUseCase(shiftRepo shift.Repository, recorder *auditusecases.Recorder, log logger.Interface) *CancelShiftUseCase {
	return &CancelShiftUseCase{
		shiftRepo: shiftRepo,
		recorder:  recorder,
		logger:    log,
	}
}

func (uc *CancelShiftUseCase) Execute(ctx context.Context, cmd CancelShiftCommand) (*CancelShiftResult, error) {
	s, err := uc.shiftRepo.GetByUUID(ctx, cmd.ShiftUUID)
	if err != nil {
		uc.logger.Errorw("failed to get shift", "error", err)
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	if s == nil || s.CondominiumID() != cmd.CondominiumID {
		return nil, errors.NewNotFoundError(i18n.MsgShiftNotFound, i18n.Default(i18n.MsgShiftNotFound))
	}

	if err := s.Cancel(); err != nil {
		if stderrors.Is(err, shift.ErrAlreadyCancelled) {
			return nil, errors.NewConflictError("shift already cancelled")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.shiftRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update shift", "shift_uuid", cmd.ShiftUUID, "error", err)
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}

	condoID := cmd.CondominiumID
	uc.recorder.Record(ctx, audit.EventShiftCancelled, cmd.ActorUUID, &condoID,
		fmt.Sprintf("shift/%s", s.UUID()),
		"shift cancelled",
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("shift cancelled",
		"shift_uuid", s.UUID(),
		"condominium_id", cmd.CondominiumID)

	return &CancelShiftResult{Shift: toShiftView(s)}, nil
}
