// Package visitor models the visitor pre-authorization lifecycle: residents
// create authorizations, guards consume them at check-in, and a record of the
// physical presence is kept until check-out.
package visitor

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuthorizationType distinguishes one-off visits from standing permissions.
type AuthorizationType string

const (
	AuthorizationTemporary AuthorizationType = "temporary"
	AuthorizationPermanent AuthorizationType = "permanent"
)

func (t AuthorizationType) IsValid() bool {
	return t == AuthorizationTemporary || t == AuthorizationPermanent
}

// ValidityStatus describes whether an authorization can be used right now.
type ValidityStatus string

const (
	ValidityActive   ValidityStatus = "active"
	ValidityPending  ValidityStatus = "pending"  // valid_from is in the future
	ValidityExpired  ValidityStatus = "expired"  // valid_to has passed
	ValidityInactive ValidityStatus = "inactive" // deactivated by the resident
)

// Authorization is a resident-created advance permission for a visitor.
type Authorization struct {
	id                   uint
	uuid                 string
	condominiumID        uint
	createdBy            uint
	visitorName          string
	identificationNumber string
	vehiclePlate         string
	authType             AuthorizationType
	validFrom            time.Time
	validTo              time.Time
	isActive             bool
	notes                string
	createdAt            time.Time
	updatedAt            time.Time
}

// NewAuthorization creates an active authorization for the validity window.
// Permanent authorizations ignore validTo (stored as zero).
func NewAuthorization(
	condominiumID uint,
	createdBy uint,
	visitorName string,
	identificationNumber string,
	vehiclePlate string,
	authType AuthorizationType,
	validFrom, validTo time.Time,
	notes string,
) (*Authorization, error) {
	if condominiumID == 0 {
		return nil, fmt.Errorf("condominium ID is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if visitorName == "" {
		return nil, fmt.Errorf("visitor name is required")
	}
	if !authType.IsValid() {
		return nil, fmt.Errorf("invalid authorization type: %s", authType)
	}
	if authType == AuthorizationTemporary {
		if validTo.IsZero() {
			return nil, fmt.Errorf("temporary authorization requires a valid_to date")
		}
		if !validTo.After(validFrom) {
			return nil, fmt.Errorf("valid_to must be after valid_from")
		}
	}

	now := time.Now()
	if validFrom.IsZero() {
		validFrom = now
	}

	return &Authorization{
		uuid:                 uuid.NewString(),
		condominiumID:        condominiumID,
		createdBy:            createdBy,
		visitorName:          visitorName,
		identificationNumber: identificationNumber,
		vehiclePlate:         vehiclePlate,
		authType:             authType,
		validFrom:            validFrom,
		validTo:              validTo,
		isActive:             true,
		notes:                notes,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

// ReconstructAuthorization rebuilds an authorization from persistence.
func ReconstructAuthorization(
	id uint,
	uid string,
	condominiumID uint,
	createdBy uint,
	visitorName string,
	identificationNumber string,
	vehiclePlate string,
	authType AuthorizationType,
	validFrom, validTo time.Time,
	isActive bool,
	notes string,
	createdAt, updatedAt time.Time,
) (*Authorization, error) {
	if id == 0 {
		return nil, fmt.Errorf("authorization ID cannot be zero")
	}
	if !authType.IsValid() {
		return nil, fmt.Errorf("invalid authorization type: %s", authType)
	}
	return &Authorization{
		id:                   id,
		uuid:                 uid,
		condominiumID:        condominiumID,
		createdBy:            createdBy,
		visitorName:          visitorName,
		identificationNumber: identificationNumber,
		vehiclePlate:         vehiclePlate,
		authType:             authType,
		validFrom:            validFrom,
		validTo:              validTo,
		isActive:             isActive,
		notes:                notes,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}, nil
}

func (a *Authorization) ID() uint                     { return a.id }
func (a *Authorization) UUID() string                 { return a.uuid }
func (a *Authorization) CondominiumID() uint          { return a.condominiumID }
func (a *Authorization) CreatedBy() uint              { return a.createdBy }
func (a *Authorization) VisitorName() string          { return a.visitorName }
func (a *Authorization) IdentificationNumber() string { return a.identificationNumber }
func (a *Authorization) VehiclePlate() string         { return a.vehiclePlate }
func (a *Authorization) Type() AuthorizationType      { return a.authType }
func (a *Authorization) ValidFrom() time.Time         { return a.validFrom }
func (a *Authorization) ValidTo() time.Time           { return a.validTo }
func (a *Authorization) IsActive() bool               { return a.isActive }
func (a *Authorization) Notes() string                { return a.notes }
func (a *Authorization) CreatedAt() time.Time         { return a.createdAt }
func (a *Authorization) UpdatedAt() time.Time         { return a.updatedAt }

// Validity computes the read-time validity status.
func (a *Authorization) Validity(now time.Time) ValidityStatus {
	if !a.isActive {
		return ValidityInactive
	}
	if now.Before(a.validFrom) {
		return ValidityPending
	}
	if a.authType == AuthorizationTemporary && now.After(a.validTo) {
		return ValidityExpired
	}
	return ValidityActive
}

// IsCurrentlyValid reports whether a check-in against this authorization
// counts as authorized right now.
func (a *Authorization) IsCurrentlyValid(now time.Time) bool {
	return a.Validity(now) == ValidityActive
}

// Deactivate turns the authorization off without deleting it.
func (a *Authorization) Deactivate() {
	a.isActive = false
	a.updatedAt = time.Now()
}

// SetID assigns the persistence-generated id after the first save.
func (a *Authorization) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("authorization ID already set")
	}
	if id == 0 {
		return fmt.Errorf("authorization ID cannot be zero")
	}
	a.id = id
	return nil
}
