package visitor

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EntryStatus is the physical-presence state. The machine is
// inside -> exited, with exited terminal.
type EntryStatus string

const (
	EntryInside EntryStatus = "inside"
	EntryExited EntryStatus = "exited"
)

func (s EntryStatus) IsValid() bool {
	return s == EntryInside || s == EntryExited
}

// EntryType records how the visitor got in.
type EntryType string

const (
	EntryPreauthorized EntryType = "preauthorized"
	EntryManual        EntryType = "manual"
)

// Entry is a concrete, timestamped presence record created at check-in.
// A check-in always produces an entry, even when no valid authorization
// matches; the entry is flagged unauthorized instead of being dropped.
type Entry struct {
	id                   uint
	uuid                 string
	condominiumID        uint
	authorizationID      *uint // nil for manual, ad-hoc entries
	guardID              uint
	visitorName          string
	identificationNumber string
	vehiclePlate         string
	destination          string
	status               EntryStatus
	isAuthorized         bool
	entryType            EntryType
	entryAt              time.Time
	exitAt               *time.Time
	notes                string
}

// NewEntry records a visitor coming inside. authorizationID is nil for
// manual entries; isAuthorized reflects whether a matched authorization was
// valid at the moment of check-in.
func NewEntry(
	condominiumID uint,
	guardID uint,
	authorizationID *uint,
	visitorName string,
	identificationNumber string,
	vehiclePlate string,
	destination string,
	isAuthorized bool,
	notes string,
) (*Entry, error) {
	if condominiumID == 0 {
		return nil, fmt.Errorf("condominium ID is required")
	}
	if guardID == 0 {
		return nil, fmt.Errorf("guard ID is required")
	}
	if visitorName == "" {
		return nil, fmt.Errorf("visitor name is required")
	}

	entryType := EntryManual
	if authorizationID != nil {
		entryType = EntryPreauthorized
	}

	return &Entry{
		uuid:                 uuid.NewString(),
		condominiumID:        condominiumID,
		authorizationID:      authorizationID,
		guardID:              guardID,
		visitorName:          visitorName,
		identificationNumber: identificationNumber,
		vehiclePlate:         vehiclePlate,
		destination:          destination,
		status:               EntryInside,
		isAuthorized:         isAuthorized,
		entryType:            entryType,
		entryAt:              time.Now(),
		notes:                notes,
	}, nil
}

// ReconstructEntry rebuilds an entry from persistence.
func ReconstructEntry(
	id uint,
	uid string,
	condominiumID uint,
	authorizationID *uint,
	guardID uint,
	visitorName string,
	identificationNumber string,
	vehiclePlate string,
	destination string,
	status EntryStatus,
	isAuthorized bool,
	entryType EntryType,
	entryAt time.Time,
	exitAt *time.Time,
	notes string,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid entry status: %s", status)
	}
	return &Entry{
		id:                   id,
		uuid:                 uid,
		condominiumID:        condominiumID,
		authorizationID:      authorizationID,
		guardID:              guardID,
		visitorName:          visitorName,
		identificationNumber: identificationNumber,
		vehiclePlate:         vehiclePlate,
		destination:          destination,
		status:               status,
		isAuthorized:         isAuthorized,
		entryType:            entryType,
		entryAt:              entryAt,
		exitAt:               exitAt,
		notes:                notes,
	}, nil
}

func (e *Entry) ID() uint                     { return e.id }
func (e *Entry) UUID() string                 { return e.uuid }
func (e *Entry) CondominiumID() uint          { return e.condominiumID }
func (e *Entry) GuardID() uint                { return e.guardID }
func (e *Entry) VisitorName() string          { return e.visitorName }
func (e *Entry) IdentificationNumber() string { return e.identificationNumber }
func (e *Entry) VehiclePlate() string         { return e.vehiclePlate }
func (e *Entry) Destination() string          { return e.destination }
func (e *Entry) Status() EntryStatus          { return e.status }
func (e *Entry) IsAuthorized() bool           { return e.isAuthorized }
func (e *Entry) Type() EntryType              { return e.entryType }
func (e *Entry) EntryAt() time.Time           { return e.entryAt }
func (e *Entry) Notes() string                { return e.notes }

func (e *Entry) AuthorizationID() *uint {
	if e.authorizationID == nil {
		return nil
	}
	v := *e.authorizationID
	return &v
}

func (e *Entry) ExitAt() *time.Time {
	if e.exitAt == nil {
		return nil
	}
	v := *e.exitAt
	return &v
}

// CheckOut transitions the entry to exited at the given instant. Exited is
// terminal. The caller supplies exitAt so the aggregate matches what was
// persisted.
func (e *Entry) CheckOut(exitAt time.Time, notes string) error {
	if e.status == EntryExited {
		return ErrAlreadyExited
	}
	e.status = EntryExited
	e.exitAt = &exitAt
	if notes != "" {
		e.notes = notes
	}
	return nil
}

// SetID assigns the persistence-generated id after the first save.
func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}
