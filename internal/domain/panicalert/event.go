// Package panicalert models emergency alerts. Panic triggers bypass module
// gating: life-safety signaling never depends on tenant configuration.
package panicalert

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the alert state: active -> resolved, with resolved terminal.
type Status string

const (
	StatusActive   Status = "active"
	StatusResolved Status = "resolved"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusResolved
}

var (
	ErrAlreadyResolved = errors.New("panic event already resolved")
	ErrEventNotFound   = errors.New("panic event not found")
)

// Event is one triggered alert.
type Event struct {
	id              uint
	uuid            string
	condominiumID   uint
	userID          uint
	panicType       string
	location        string
	latitude        *float64
	longitude       *float64
	description     string
	status          Status
	resolutionNotes string
	resolvedBy      *uint
	resolvedAt      *time.Time
	createdAt       time.Time
}

func NewEvent(
	condominiumID uint,
	userID uint,
	panicType string,
	location string,
	latitude, longitude *float64,
	description string,
) (*Event, error) {
	if condominiumID == 0 {
		return nil, fmt.Errorf("condominium ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if panicType == "" {
		return nil, fmt.Errorf("panic type is required")
	}

	return &Event{
		uuid:          uuid.NewString(),
		condominiumID: condominiumID,
		userID:        userID,
		panicType:     panicType,
		location:      location,
		latitude:      latitude,
		longitude:     longitude,
		description:   description,
		status:        StatusActive,
		createdAt:     time.Now(),
	}, nil
}

// Reconstruct rebuilds a panic event from persistence.
func Reconstruct(
	id uint,
	uid string,
	condominiumID uint,
	userID uint,
	panicType string,
	location string,
	latitude, longitude *float64,
	description string,
	status Status,
	resolutionNotes string,
	resolvedBy *uint,
	resolvedAt *time.Time,
	createdAt time.Time,
) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("panic event ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid panic status: %s", status)
	}
	return &Event{
		id:              id,
		uuid:            uid,
		condominiumID:   condominiumID,
		userID:          userID,
		panicType:       panicType,
		location:        location,
		latitude:        latitude,
		longitude:       longitude,
		description:     description,
		status:          status,
		resolutionNotes: resolutionNotes,
		resolvedBy:      resolvedBy,
		resolvedAt:      resolvedAt,
		createdAt:       createdAt,
	}, nil
}

func (e *Event) ID() uint                { return e.id }
func (e *Event) UUID() string            { return e.uuid }
func (e *Event) CondominiumID() uint     { return e.condominiumID }
func (e *Event) UserID() uint            { return e.userID }
func (e *Event) PanicType() string       { return e.panicType }
func (e *Event) Location() string        { return e.location }
func (e *Event) Description() string     { return e.description }
func (e *Event) Status() Status          { return e.status }
func (e *Event) ResolutionNotes() string { return e.resolutionNotes }
func (e *Event) CreatedAt() time.Time    { return e.createdAt }

func (e *Event) Latitude() *float64 {
	if e.latitude == nil {
		return nil
	}
	v := *e.latitude
	return &v
}

func (e *Event) Longitude() *float64 {
	if e.longitude == nil {
		return nil
	}
	v := *e.longitude
	return &v
}

func (e *Event) ResolvedBy() *uint {
	if e.resolvedBy == nil {
		return nil
	}
	v := *e.resolvedBy
	return &v
}

func (e *Event) ResolvedAt() *time.Time {
	if e.resolvedAt == nil {
		return nil
	}
	v := *e.resolvedAt
	return &v
}

// Resolve closes the event with an audit note.
func (e *Event) Resolve(resolvedBy uint, notes string) error {
	if e.status == StatusResolved {
		return ErrAlreadyResolved
	}
	now := time.Now()
	e.status = StatusResolved
	e.resolutionNotes = notes
	e.resolvedBy = &resolvedBy
	e.resolvedAt = &now
	return nil
}

// SetID assigns the persistence-generated id after the first save.
func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("panic event ID already set")
	}
	if id == 0 {
		return fmt.Errorf("panic event ID cannot be zero")
	}
	e.id = id
	return nil
}
