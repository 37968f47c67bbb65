package mappers

import (
	"fmt"
	"time"

	"genturix/internal/domain/visitor"
	"genturix/internal/infrastructure/persistence/models"
)

// AuthorizationMapper converts between visitor authorizations and their
// persistence models. A zero valid_to (permanent authorizations) is stored
// as 0 milliseconds.
type AuthorizationMapper interface {
	ToModel(a *visitor.Authorization) (*models.AuthorizationModel, error)
	ToDomain(m *models.AuthorizationModel) (*visitor.Authorization, error)
}

type AuthorizationMapperImpl struct{}

func NewAuthorizationMapper() AuthorizationMapper {
	return &AuthorizationMapperImpl{}
}

func (mp *AuthorizationMapperImpl) ToModel(a *visitor.Authorization) (*models.AuthorizationModel, error) {
	if a == nil {
		return nil, fmt.Errorf("authorization cannot be nil")
	}

	return &models.AuthorizationModel{
		ID:                   a.ID(),
		UUID:                 a.UUID(),
		CondominiumID:        a.CondominiumID(),
		CreatedBy:            a.CreatedBy(),
		VisitorName:          a.VisitorName(),
		IdentificationNumber: a.IdentificationNumber(),
		VehiclePlate:         a.VehiclePlate(),
		AuthType:             string(a.Type()),
		ValidFrom:            timeToMillis(a.ValidFrom()),
		ValidTo:              timeToMillis(a.ValidTo()),
		IsActive:             a.IsActive(),
		Notes:                a.Notes(),
		CreatedAt:            timeToMillis(a.CreatedAt()),
		UpdatedAt:            timeToMillis(a.UpdatedAt()),
	}, nil
}

func (mp *AuthorizationMapperImpl) ToDomain(m *models.AuthorizationModel) (*visitor.Authorization, error) {
	if m == nil {
		return nil, fmt.Errorf("authorization model cannot be nil")
	}

	validTo := time.Time{}
	if m.ValidTo != 0 {
		validTo = millisToTime(m.ValidTo)
	}

	return visitor.ReconstructAuthorization(
		m.ID,
		m.UUID,
		m.CondominiumID,
		m.CreatedBy,
		m.VisitorName,
		m.IdentificationNumber,
		m.VehiclePlate,
		visitor.AuthorizationType(m.AuthType),
		millisToTime(m.ValidFrom),
		validTo,
		m.IsActive,
		m.Notes,
		millisToTime(m.CreatedAt),
		millisToTime(m.UpdatedAt),
	)
}

// EntryMapper converts between visitor entries and persistence models.
type EntryMapper interface {
	ToModel(e *visitor.Entry) (*models.VisitorEntryModel, error)
	ToDomain(m *models.VisitorEntryModel) (*visitor.Entry, error)
}

type EntryMapperImpl struct{}

func NewEntryMapper() EntryMapper {
	return &EntryMapperImpl{}
}

func (mp *EntryMapperImpl) ToModel(e *visitor.Entry) (*models.VisitorEntryModel, error) {
	if e == nil {
		return nil, fmt.Errorf("entry cannot be nil")
	}

	return &models.VisitorEntryModel{
		ID:                   e.ID(),
		UUID:                 e.UUID(),
		CondominiumID:        e.CondominiumID(),
		AuthorizationID:      e.AuthorizationID(),
		GuardID:              e.GuardID(),
		VisitorName:          e.VisitorName(),
		IdentificationNumber: e.IdentificationNumber(),
		VehiclePlate:         e.VehiclePlate(),
		Destination:          e.Destination(),
		Status:               string(e.Status()),
		IsAuthorized:         e.IsAuthorized(),
		EntryType:            string(e.Type()),
		EntryAt:              timeToMillis(e.EntryAt()),
		ExitAt:               timePtrToMillis(e.ExitAt()),
		Notes:                e.Notes(),
	}, nil
}

func (mp *EntryMapperImpl) ToDomain(m *models.VisitorEntryModel) (*visitor.Entry, error) {
	if m == nil {
		return nil, fmt.Errorf("entry model cannot be nil")
	}

	return visitor.ReconstructEntry(
		m.ID,
		m.UUID,
		m.CondominiumID,
		m.AuthorizationID,
		m.GuardID,
		m.VisitorName,
		m.IdentificationNumber,
		m.VehiclePlate,
		m.Destination,
		visitor.EntryStatus(m.Status),
		m.IsAuthorized,
		visitor.EntryType(m.EntryType),
		millisToTime(m.EntryAt),
		millisPtrToTime(m.ExitAt),
		m.Notes,
	)
}
