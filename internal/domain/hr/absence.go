package hr

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AbsenceStatus is the absence request state: pending -> approved|rejected.
type AbsenceStatus string

const (
	AbsencePending  AbsenceStatus = "pending"
	AbsenceApproved AbsenceStatus = "approved"
	AbsenceRejected AbsenceStatus = "rejected"
)

func (s AbsenceStatus) IsValid() bool {
	switch s {
	case AbsencePending, AbsenceApproved, AbsenceRejected:
		return true
	}
	return false
}

// AbsenceRequest is a staff request for time off, decided by HR or an admin.
type AbsenceRequest struct {
	id            uint
	uuid          string
	condominiumID uint
	userID        uint
	fromDate      time.Time
	toDate        time.Time
	reason        string
	status        AbsenceStatus
	decidedBy     *uint
	decisionNotes string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewAbsenceRequest(condominiumID, userID uint, fromDate, toDate time.Time, reason string) (*AbsenceRequest, error) {
	if condominiumID == 0 {
		return nil, fmt.Errorf("condominium ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if fromDate.IsZero() || toDate.IsZero() {
		return nil, fmt.Errorf("from and to dates are required")
	}
	if toDate.Before(fromDate) {
		return nil, fmt.Errorf("to date must not be before from date")
	}

	now := time.Now()
	return &AbsenceRequest{
		uuid:          uuid.NewString(),
		condominiumID: condominiumID,
		userID:        userID,
		fromDate:      fromDate,
		toDate:        toDate,
		reason:        reason,
		status:        AbsencePending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructAbsenceRequest rebuilds an absence request from persistence.
func ReconstructAbsenceRequest(
	id uint,
	uid string,
	condominiumID uint,
	userID uint,
	fromDate, toDate time.Time,
	reason string,
	status AbsenceStatus,
	decidedBy *uint,
	decisionNotes string,
	createdAt, updatedAt time.Time,
) (*AbsenceRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("absence request ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid absence status: %s", status)
	}
	return &AbsenceRequest{
		id:            id,
		uuid:          uid,
		condominiumID: condominiumID,
		userID:        userID,
		fromDate:      fromDate,
		toDate:        toDate,
		reason:        reason,
		status:        status,
		decidedBy:     decidedBy,
		decisionNotes: decisionNotes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (r *AbsenceRequest) ID() uint              { return r.id }
func (r *AbsenceRequest) UUID() string          { return r.uuid }
func (r *AbsenceRequest) CondominiumID() uint   { return r.condominiumID }
func (r *AbsenceRequest) UserID() uint          { return r.userID }
func (r *AbsenceRequest) FromDate() time.Time   { return r.fromDate }
func (r *AbsenceRequest) ToDate() time.Time     { return r.toDate }
func (r *AbsenceRequest) Reason() string        { return r.reason }
func (r *AbsenceRequest) Status() AbsenceStatus { return r.status }
func (r *AbsenceRequest) DecisionNotes() string { return r.decisionNotes }
func (r *AbsenceRequest) CreatedAt() time.Time  { return r.createdAt }
func (r *AbsenceRequest) UpdatedAt() time.Time  { return r.updatedAt }

func (r *AbsenceRequest) DecidedBy() *uint {
	if r.decidedBy == nil {
		return nil
	}
	v := *r.decidedBy
	return &v
}

// Decide transitions a pending request to approved or rejected.
func (r *AbsenceRequest) Decide(approved bool, decidedBy uint, notes string) error {
	if r.status != AbsencePending {
		return ErrAbsenceDecided
	}
	if approved {
		r.status = AbsenceApproved
	} else {
		r.status = AbsenceRejected
	}
	r.decidedBy = &decidedBy
	r.decisionNotes = notes
	r.updatedAt = time.Now()
	return nil
}

// SetID assigns the persistence-generated id after the first save.
func (r *AbsenceRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("absence request ID already set")
	}
	if id == 0 {
		return fmt.Errorf("absence request ID cannot be zero")
	}
	r.id = id
	return nil
}
