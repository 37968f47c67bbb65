package usecases

import (
	"context"
	"testing"
	"time"

	"genturix/internal/domain/hr"
	"genturix/internal/shared/errors"
)

func TestClockIn_Success(t *testing.T) {
	var created *hr.Attendance
	attendanceRepo := &mockAttendanceRepository{
		CreateFunc: func(ctx context.Context, a *hr.Attendance) error {
			created = a
			return nil
		},
	}

	uc := NewClockInUseCase(attendanceRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), ClockInCommand{
		CondominiumID: 1,
		UserID:        9,
		Notes:         "turno nocturno",
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("attendance should have been persisted")
	}
	if !created.IsOpen() {
		t.Error("a fresh record should be open")
	}
	if result.Attendance.ClockOutAt != nil {
		t.Error("ClockOutAt should be nil on clock-in")
	}
}

func TestClockIn_AlreadyOpenIsConflict(t *testing.T) {
	open, err := hr.NewAttendance(1, 9, "")
	if err != nil {
		t.Fatalf("NewAttendance() unexpected error: %v", err)
	}

	createCalled := false
	attendanceRepo := &mockAttendanceRepository{
		GetOpenByUserFunc: func(ctx context.Context, userID uint) (*hr.Attendance, error) {
			return open, nil
		},
		CreateFunc: func(ctx context.Context, a *hr.Attendance) error {
			createCalled = true
			return nil
		},
	}

	uc := NewClockInUseCase(attendanceRepo, noopLogger{})

	_, err = uc.Execute(context.Background(), ClockInCommand{CondominiumID: 1, UserID: 9})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeConflict {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeConflict)
	}
	if createCalled {
		t.Error("a second record must not be created")
	}
}

func TestClockOut_Success(t *testing.T) {
	var closedAt time.Time
	attendanceRepo := &mockAttendanceRepository{
		CloseOpenByUserFunc: func(ctx context.Context, userID uint, clockOutAt time.Time) error {
			closedAt = clockOutAt
			return nil
		},
	}

	uc := NewClockOutUseCase(attendanceRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), ClockOutCommand{UserID: 9})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if !result.ClockOutAt.Equal(closedAt) {
		t.Errorf("ClockOutAt = %v, want the persisted %v", result.ClockOutAt, closedAt)
	}
}

func TestClockOut_NotClockedIn(t *testing.T) {
	attendanceRepo := &mockAttendanceRepository{
		CloseOpenByUserFunc: func(ctx context.Context, userID uint, clockOutAt time.Time) error {
			return hr.ErrNotClockedIn
		},
	}

	uc := NewClockOutUseCase(attendanceRepo, noopLogger{})

	_, err := uc.Execute(context.Background(), ClockOutCommand{UserID: 9})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeNotFound {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeNotFound)
	}
}
