package usecases

import (
	"context"
	"fmt"
	"time"

	"genturix/internal/domain/shift"
	"genturix/internal/domain/user"
	"genturix/internal/shared/authorization"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"
)

type CreateShiftCommand struct {
	CondominiumID uint
	GuardUUID     string
	StartTime     time.Time
	EndTime       time.Time
	Location      string
	Notes         string
}

type CreateShiftResult struct {
	Shift ShiftView
}

// CreateShiftUseCase schedules a guard shift. The assignee must be an active
// guard of the same tenant.
type CreateShiftUseCase struct {
	shiftRepo shift.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewCreateShiftUseCase(shiftRepo shift.Repository, userRepo user.Repository, log logger.Interface) *CreateShiftUseCase {
	return &CreateShiftUseCase{
		shiftRepo: shiftRepo,
		userRepo:  userRepo,
		logger:    log,
	}
}

func (uc *CreateShiftUseCase) Execute(ctx context.Context, cmd CreateShiftCommand) (*CreateShiftResult, error) {
	guard, err := uc.userRepo.GetByUUID(ctx, cmd.GuardUUID)
	if err != nil {
		uc.logger.Errorw("failed to get guard", "error", err)
		return nil, fmt.Errorf("failed to get guard: %w", err)
	}
	if guard == nil || !guard.IsActive() {
		return nil, errors.NewNotFoundError("guard not found")
	}
	if guard.CondominiumID() == nil || *guard.CondominiumID() != cmd.CondominiumID {
		return nil, errors.NewNotFoundError("guard not found")
	}
	if !guard.HasRole(authorization.RoleGuard) {
		return nil, errors.NewValidationError("assignee is not a guard")
	}

	s, err := shift.NewShift(cmd.CondominiumID, guard.ID(), cmd.StartTime, cmd.EndTime, cmd.Location, cmd.Notes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.shiftRepo.Create(ctx, s); err != nil {
		uc.logger.Errorw("failed to create shift", "error", err)
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	uc.logger.Infow("shift created",
		"shift_uuid", s.UUID(),
		"guard_uuid", guard.UUID(),
		"condominium_id", cmd.CondominiumID)

	return &CreateShiftResult{Shift: toShiftView(s)}, nil
}
