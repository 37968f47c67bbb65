// Package hr models staff attendance (clock-in/out) and absence requests.
package hr

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyClockedIn  = errors.New("an open attendance record already exists")
	ErrNotClockedIn      = errors.New("no open attendance record")
	ErrAbsenceDecided    = errors.New("absence request already decided")
	ErrAbsenceNotFound   = errors.New("absence request not found")
	ErrAttendanceMissing = errors.New("attendance record not found")
)

// Attendance is one clock-in, optionally closed by a clock-out.
type Attendance struct {
	id            uint
	uuid          string
	condominiumID uint
	userID        uint
	clockInAt     time.Time
	clockOutAt    *time.Time
	notes         string
}

func NewAttendance(condominiumID, userID uint, notes string) (*Attendance, error) {
	if condominiumID == 0 {
		return nil, fmt.Errorf("condominium ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &Attendance{
		uuid:          uuid.NewString(),
		condominiumID: condominiumID,
		userID:        userID,
		clockInAt:     time.Now(),
		notes:         notes,
	}, nil
}

// ReconstructAttendance rebuilds an attendance record from persistence.
func ReconstructAttendance(
	id uint,
	uid string,
	condominiumID uint,
	userID uint,
	clockInAt time.Time,
	clockOutAt *time.Time,
	notes string,
) (*Attendance, error) {
	if id == 0 {
		return nil, fmt.Errorf("attendance ID cannot be zero")
	}
	return &Attendance{
		id:            id,
		uuid:          uid,
		condominiumID: condominiumID,
		userID:        userID,
		clockInAt:     clockInAt,
		clockOutAt:    clockOutAt,
		notes:         notes,
	}, nil
}

func (a *Attendance) ID() uint            { return a.id }
func (a *Attendance) UUID() string        { return a.uuid }
func (a *Attendance) CondominiumID() uint { return a.condominiumID }
func (a *Attendance) UserID() uint        { return a.userID }
func (a *Attendance) ClockInAt() time.Time {
	return a.clockInAt
}
func (a *Attendance) Notes() string { return a.notes }

func (a *Attendance) ClockOutAt() *time.Time {
	if a.clockOutAt == nil {
		return nil
	}
	v := *a.clockOutAt
	return &v
}

// IsOpen reports whether the record has not been clocked out yet.
func (a *Attendance) IsOpen() bool {
	return a.clockOutAt == nil
}

// ClockOut closes the record.
func (a *Attendance) ClockOut() error {
	if a.clockOutAt != nil {
		return ErrNotClockedIn
	}
	now := time.Now()
	a.clockOutAt = &now
	return nil
}

// SetID assigns the persistence-generated id after the first save.
func (a *Attendance) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attendance ID already set")
	}
	if id == 0 {
		return fmt.Errorf("attendance ID cannot be zero")
	}
	a.id = id
	return nil
}
