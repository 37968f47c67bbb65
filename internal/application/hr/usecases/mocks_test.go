package usecases

import (
	"context"
	"time"

	"genturix/internal/domain/hr"
	"genturix/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockAttendanceRepository struct {
	CreateFunc          func(ctx context.Context, a *hr.Attendance) error
	GetOpenByUserFunc   func(ctx context.Context, userID uint) (*hr.Attendance, error)
	CloseOpenByUserFunc func(ctx context.Context, userID uint, clockOutAt time.Time) error
}

func (m *mockAttendanceRepository) Create(ctx context.Context, a *hr.Attendance) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAttendanceRepository) GetOpenByUser(ctx context.Context, userID uint) (*hr.Attendance, error) {
	if m.GetOpenByUserFunc != nil {
		return m.GetOpenByUserFunc(ctx, userID)
	}
	return nil, hr.ErrNotClockedIn
}

func (m *mockAttendanceRepository) CloseOpenByUser(ctx context.Context, userID uint, clockOutAt time.Time) error {
	if m.CloseOpenByUserFunc != nil {
		return m.CloseOpenByUserFunc(ctx, userID, clockOutAt)
	}
	return nil
}

func (m *mockAttendanceRepository) ListByCondominium(ctx context.Context, condominiumID uint, page, pageSize int) ([]*hr.Attendance, int64, error) {
	return nil, 0, nil
}

type mockAbsenceRepository struct {
	CreateFunc    func(ctx context.Context, r *hr.AbsenceRequest) error
	GetByUUIDFunc func(ctx context.Context, uid string) (*hr.AbsenceRequest, error)
	UpdateFunc    func(ctx context.Context, r *hr.AbsenceRequest) error
	ListFunc      func(ctx context.Context, condominiumID uint, page, pageSize int) ([]*hr.AbsenceRequest, int64, error)
}

func (m *mockAbsenceRepository) Create(ctx context.Context, r *hr.AbsenceRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockAbsenceRepository) GetByID(ctx context.Context, id uint) (*hr.AbsenceRequest, error) {
	return nil, nil
}

func (m *mockAbsenceRepository) GetByUUID(ctx context.Context, uid string) (*hr.AbsenceRequest, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uid)
	}
	return nil, nil
}

func (m *mockAbsenceRepository) Update(ctx context.Context, r *hr.AbsenceRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockAbsenceRepository) ListByCondominium(ctx context.Context, condominiumID uint, page, pageSize int) ([]*hr.AbsenceRequest, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, condominiumID, page, pageSize)
	}
	return nil, 0, nil
}
