// Package shift models guard shift scheduling. Shifts are never physically
// removed; deletion is a soft transition to cancelled.
package shift

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the shift state. The machine is active -> cancelled, with
// cancelled terminal.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusCancelled
}

var ErrAlreadyCancelled = errors.New("shift already cancelled")

type Shift struct {
	id            uint
	uuid          string
	condominiumID uint
	guardID       uint
	startTime     time.Time
	endTime       time.Time
	location      string
	notes         string
	status        Status
	cancelledAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewShift(
	condominiumID uint,
	guardID uint,
	startTime, endTime time.Time,
	location string,
	notes string,
) (*Shift, error) {
	if condominiumID == 0 {
		return nil, fmt.Errorf("condominium ID is required")
	}
	if guardID == 0 {
		return nil, fmt.Errorf("guard ID is required")
	}
	if startTime.IsZero() || endTime.IsZero() {
		return nil, fmt.Errorf("start and end time are required")
	}
	if !endTime.After(startTime) {
		return nil, fmt.Errorf("end time must be after start time")
	}

	now := time.Now()
	return &Shift{
		uuid:          uuid.NewString(),
		condominiumID: condominiumID,
		guardID:       guardID,
		startTime:     startTime,
		endTime:       endTime,
		location:      location,
		notes:         notes,
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reconstruct rebuilds a shift from persistence.
func Reconstruct(
	id uint,
	uid string,
	condominiumID uint,
	guardID uint,
	startTime, endTime time.Time,
	location string,
	notes string,
	status Status,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Shift, error) {
	if id == 0 {
		return nil, fmt.Errorf("shift ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid shift status: %s", status)
	}
	return &Shift{
		id:            id,
		uuid:          uid,
		condominiumID: condominiumID,
		guardID:       guardID,
		startTime:     startTime,
		endTime:       endTime,
		location:      location,
		notes:         notes,
		status:        status,
		cancelledAt:   cancelledAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (s *Shift) ID() uint             { return s.id }
func (s *Shift) UUID() string         { return s.uuid }
func (s *Shift) CondominiumID() uint  { return s.condominiumID }
func (s *Shift) GuardID() uint        { return s.guardID }
func (s *Shift) StartTime() time.Time { return s.startTime }
func (s *Shift) EndTime() time.Time   { return s.endTime }
func (s *Shift) Location() string     { return s.location }
func (s *Shift) Notes() string        { return s.notes }
func (s *Shift) Status() Status       { return s.status }
func (s *Shift) CreatedAt() time.Time { return s.createdAt }
func (s *Shift) UpdatedAt() time.Time { return s.updatedAt }

func (s *Shift) CancelledAt() *time.Time {
	if s.cancelledAt == nil {
		return nil
	}
	v := *s.cancelledAt
	return &v
}

// Cancel soft-deletes the shift. Cancelled is terminal.
func (s *Shift) Cancel() error {
	if s.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	now := time.Now()
	s.status = StatusCancelled
	s.cancelledAt = &now
	s.updatedAt = now
	return nil
}

// SetID assigns the persistence-generated id after the first save.
func (s *Shift) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("shift ID already set")
	}
	if id == 0 {
		return fmt.Errorf("shift ID cannot be zero")
	}
	s.id = id
	return nil
}
