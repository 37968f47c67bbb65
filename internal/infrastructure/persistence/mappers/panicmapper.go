package mappers

import (
	"fmt"

	"genturix/internal/domain/panicalert"
	"genturix/internal/infrastructure/persistence/models"
)

type PanicEventMapper interface {
	ToModel(e *panicalert.Event) (*models.PanicEventModel, error)
	ToDomain(m *models.PanicEventModel) (*panicalert.Event, error)
}

type PanicEventMapperImpl struct{}

func NewPanicEventMapper() PanicEventMapper {
	return &PanicEventMapperImpl{}
}

func (mp *PanicEventMapperImpl) ToModel(e *panicalert.Event) (*models.PanicEventModel, error) {
	if e == nil {
		return nil, fmt.Errorf("panic event cannot be nil")
	}

	return &models.PanicEventModel{
		ID:              e.ID(),
		UUID:            e.UUID(),
		CondominiumID:   e.CondominiumID(),
		UserID:          e.UserID(),
		PanicType:       e.PanicType(),
		Location:        e.Location(),
		Latitude:        e.Latitude(),
		Longitude:       e.Longitude(),
		Description:     e.Description(),
		Status:          string(e.Status()),
		ResolutionNotes: e.ResolutionNotes(),
		ResolvedBy:      e.ResolvedBy(),
		ResolvedAt:      timePtrToMillis(e.ResolvedAt()),
		CreatedAt:       timeToMillis(e.CreatedAt()),
	}, nil
}

func (mp *PanicEventMapperImpl) ToDomain(m *models.PanicEventModel) (*panicalert.Event, error) {
	if m == nil {
		return nil, fmt.Errorf("panic event model cannot be nil")
	}

	return panicalert.Reconstruct(
		m.ID,
		m.UUID,
		m.CondominiumID,
		m.UserID,
		m.PanicType,
		m.Location,
		m.Latitude,
		m.Longitude,
		m.Description,
		panicalert.Status(m.Status),
		m.ResolutionNotes,
		m.ResolvedBy,
		millisPtrToTime(m.ResolvedAt),
		millisToTime(m.CreatedAt),
	)
}
