package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"genturix/internal/domain/hr"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"
)

type ClockOutCommand struct {
	UserID uint
}

type ClockOutResult struct {
	ClockOutAt time.Time
}

// ClockOutUseCase closes the user's open attendance record. The close runs
// as a single conditional update, so concurrent clock-outs lose cleanly.
type ClockOutUseCase struct {
	attendanceRepo hr.AttendanceRepository
	logger         logger.Interface
}

func NewClockOutUseCase(attendanceRepo hr.AttendanceRepository, log logger.Interface) *ClockOutUseCase {
	return &ClockOutUseCase{attendanceRepo: attendanceRepo, logger: log}
}

func (uc *ClockOutUseCase) Execute(ctx context.Context, cmd ClockOutCommand) (*ClockOutResult, error) {
	clockOutAt := time.Now()
	if err := uc.attendanceRepo.CloseOpenByUser(ctx, cmd.UserID, clockOutAt); err != nil {
		if stderrors.Is(err, hr.ErrNotClockedIn) {
			return nil, errors.NewNotFoundError("no open attendance record")
		}
		uc.logger.Errorw("failed to close attendance", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to close attendance: %w", err)
	}

	uc.logger.Infow("user clocked out", "user_id", cmd.UserID)
	return &ClockOutResult{ClockOutAt: clockOutAt}, nil
}
