package hr

import (
	"context"
	"time"
)

// AttendanceRepository persists attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, a *Attendance) error

	// GetOpenByUser returns the user's open record, or ErrNotClockedIn.
	GetOpenByUser(ctx context.Context, userID uint) (*Attendance, error)

	// CloseOpenByUser clocks out the user's open record with a single
	// conditional update; returns ErrNotClockedIn when there is none.
	CloseOpenByUser(ctx context.Context, userID uint, clockOutAt time.Time) error

	// ListByCondominium returns the tenant's attendance records, newest first.
	ListByCondominium(ctx context.Context, condominiumID uint, page, pageSize int) ([]*Attendance, int64, error)
}

// AbsenceRepository persists absence requests.
type AbsenceRepository interface {
	Create(ctx context.Context, r *AbsenceRequest) error

	GetByID(ctx context.Context, id uint) (*AbsenceRequest, error)

	GetByUUID(ctx context.Context, uid string) (*AbsenceRequest, error)

	Update(ctx context.Context, r *AbsenceRequest) error

	// ListByCondominium returns the tenant's absence requests, newest first.
	ListByCondominium(ctx context.Context, condominiumID uint, page, pageSize int) ([]*AbsenceRequest, int64, error)
}
