package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UpgradeStatus is the seat upgrade request state:
// pending -> approved|rejected, both terminal.
type UpgradeStatus string

const (
	UpgradePending  UpgradeStatus = "pending"
	UpgradeApproved UpgradeStatus = "approved"
	UpgradeRejected UpgradeStatus = "rejected"
)

func (s UpgradeStatus) IsValid() bool {
	switch s {
	case UpgradePending, UpgradeApproved, UpgradeRejected:
		return true
	}
	return false
}

// SeatUpgradeRequest is an admin's request for more seats, decided by a
// SuperAdmin. At most one pending request may exist per condominium.
type SeatUpgradeRequest struct {
	id             uint
	uuid           string
	condominiumID  uint
	requestedBy    uint
	requestedSeats int
	status         UpgradeStatus
	decidedBy      *uint
	decisionNotes  string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewSeatUpgradeRequest(condominiumID, requestedBy uint, requestedSeats int) (*SeatUpgradeRequest, error) {
	if condominiumID == 0 {
		return nil, fmt.Errorf("condominium ID is required")
	}
	if requestedBy == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if requestedSeats < 1 {
		return nil, fmt.Errorf("requested seats must be at least 1")
	}

	now := time.Now()
	return &SeatUpgradeRequest{
		uuid:           uuid.NewString(),
		condominiumID:  condominiumID,
		requestedBy:    requestedBy,
		requestedSeats: requestedSeats,
		status:         UpgradePending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructSeatUpgradeRequest rebuilds a request from persistence.
func ReconstructSeatUpgradeRequest(
	id uint,
	uid string,
	condominiumID uint,
	requestedBy uint,
	requestedSeats int,
	status UpgradeStatus,
	decidedBy *uint,
	decisionNotes string,
	createdAt, updatedAt time.Time,
) (*SeatUpgradeRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("seat upgrade request ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid upgrade status: %s", status)
	}
	return &SeatUpgradeRequest{
		id:             id,
		uuid:           uid,
		condominiumID:  condominiumID,
		requestedBy:    requestedBy,
		requestedSeats: requestedSeats,
		status:         status,
		decidedBy:      decidedBy,
		decisionNotes:  decisionNotes,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *SeatUpgradeRequest) ID() uint              { return r.id }
func (r *SeatUpgradeRequest) UUID() string          { return r.uuid }
func (r *SeatUpgradeRequest) CondominiumID() uint   { return r.condominiumID }
func (r *SeatUpgradeRequest) RequestedBy() uint     { return r.requestedBy }
func (r *SeatUpgradeRequest) RequestedSeats() int   { return r.requestedSeats }
func (r *SeatUpgradeRequest) Status() UpgradeStatus { return r.status }
func (r *SeatUpgradeRequest) DecisionNotes() string { return r.decisionNotes }
func (r *SeatUpgradeRequest) CreatedAt() time.Time  { return r.createdAt }
func (r *SeatUpgradeRequest) UpdatedAt() time.Time  { return r.updatedAt }

func (r *SeatUpgradeRequest) DecidedBy() *uint {
	if r.decidedBy == nil {
		return nil
	}
	v := *r.decidedBy
	return &v
}

// Decide transitions a pending request. Deciding an already-decided request
// fails so a second concurrent decision loses.
func (r *SeatUpgradeRequest) Decide(approved bool, decidedBy uint, notes string) error {
	if r.status != UpgradePending {
		return ErrRequestDecided
	}
	if approved {
		r.status = UpgradeApproved
	} else {
		r.status = UpgradeRejected
	}
	r.decidedBy = &decidedBy
	r.decisionNotes = notes
	r.updatedAt = time.Now()
	return nil
}

// SetID assigns the persistence-generated id after the first save.
func (r *SeatUpgradeRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("seat upgrade request ID already set")
	}
	if id == 0 {
		return fmt.Errorf("seat upgrade request ID cannot be zero")
	}
	r.id = id
	return nil
}
