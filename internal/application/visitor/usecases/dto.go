package usecases

import (
	"time"

	"genturix/internal/domain/visitor"
)

// AuthorizationView is the read model returned to residents and guards.
// Validity and HasVisitorInside are derived at read time, never stored.
type AuthorizationView struct {
	UUID                 string
	VisitorName          string
	IdentificationNumber string
	VehiclePlate         string
	Type                 visitor.AuthorizationType
	ValidFrom            time.Time
	ValidTo              time.Time
	IsActive             bool
	Validity             visitor.ValidityStatus
	HasVisitorInside     bool
	Notes                string
	CreatedAt            time.Time
}

func toAuthorizationView(a *visitor.Authorization, now time.Time, hasVisitorInside bool) AuthorizationView {
	return AuthorizationView{
		UUID:                 a.UUID(),
		VisitorName:          a.VisitorName(),
		IdentificationNumber: a.IdentificationNumber(),
		VehiclePlate:         a.VehiclePlate(),
		Type:                 a.Type(),
		ValidFrom:            a.ValidFrom(),
		ValidTo:              a.ValidTo(),
		IsActive:             a.IsActive(),
		Validity:             a.Validity(now),
		HasVisitorInside:     hasVisitorInside,
		Notes:                a.Notes(),
		CreatedAt:            a.CreatedAt(),
	}
}

// EntryView is the read model for a presence record.
type EntryView struct {
	UUID                 string
	AuthorizationID      *uint
	VisitorName          string
	IdentificationNumber string
	VehiclePlate         string
	Destination          string
	Status               visitor.EntryStatus
	IsAuthorized         bool
	Type                 visitor.EntryType
	EntryAt              time.Time
	ExitAt               *time.Time
	Notes                string
}

func toEntryView(e *visitor.Entry) EntryView {
	return EntryView{
		UUID:                 e.UUID(),
		AuthorizationID:      e.AuthorizationID(),
		VisitorName:          e.VisitorName(),
		IdentificationNumber: e.IdentificationNumber(),
		VehiclePlate:         e.VehiclePlate(),
		Destination:          e.Destination(),
		Status:               e.Status(),
		IsAuthorized:         e.IsAuthorized(),
		Type:                 e.Type(),
		EntryAt:              e.EntryAt(),
		ExitAt:               e.ExitAt(),
		Notes:                e.Notes(),
	}
}
