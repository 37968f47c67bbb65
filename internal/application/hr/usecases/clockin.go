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

// AttendanceView is the read model for an attendance record.
type AttendanceView struct {
	UUID       string
	UserID     uint
	ClockInAt  time.Time
	ClockOutAt *time.Time
	Notes      string
}

func toAttendanceView(a *hr.Attendance) AttendanceView {
	return AttendanceView{
		UUID:       a.UUID(),
		UserID:     a.UserID(),
		ClockInAt:  a.ClockInAt(),
		ClockOutAt: a.ClockOutAt(),
		Notes:      a.Notes(),
	}
}

type ClockInCommand struct {
	CondominiumID uint
	UserID        uint
	Notes         string
}

type ClockInResult struct {
	Attendance AttendanceView
}

// ClockInUseCase opens an attendance record. One open record per user: a
// second clock-in without a clock-out is a conflict.
type ClockInUseCase struct {
	attendanceRepo hr.AttendanceRepository
	logger         logger.Interface
}

func NewClockInUseCase(attendanceRepo hr.AttendanceRepository, log logger.Interface) *ClockInUseCase {
	return &ClockInUseCase{attendanceRepo: attendanceRepo, logger: log}
}

func (uc *ClockInUseCase) Execute(ctx context.Context, cmd ClockInCommand) (*ClockInResult, error) {
	open, err := uc.attendanceRepo.GetOpenByUser(ctx, cmd.UserID)
	if err != nil && !stderrors.Is(err, hr.ErrNotClockedIn) {
		uc.logger.Errorw("failed to check open attendance", "error", err)
		return nil, fmt.Errorf("failed to check open attendance: %w", err)
	}
	if open != nil {
		return nil, errors.NewConflictError("already clocked in")
	}

	attendance, err := hr.NewAttendance(cmd.CondominiumID, cmd.UserID, cmd.Notes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attendanceRepo.Create(ctx, attendance); err != nil {
		uc.logger.Errorw("failed to create attendance", "error", err)
		return nil, fmt.Errorf("failed to create attendance: %w", err)
	}

	uc.logger.Infow("user clocked in",
		"attendance_uuid", attendance.UUID(),
		"user_id", cmd.UserID,
		"condominium_id", cmd.CondominiumID)

	return &ClockInResult{Attendance: toAttendanceView(attendance)}, nil
}
