package mappers

import (
	"fmt"

	"genturix/internal/domain/shift"
	"genturix/internal/infrastructure/persistence/models"
)

type ShiftMapper interface {
	ToModel(s *shift.Shift) (*models.ShiftModel, error)
	ToDomain(m *models.ShiftModel) (*shift.Shift, error)
}

type ShiftMapperImpl struct{}

func NewShiftMapper() ShiftMapper {
	return &ShiftMapperImpl{}
}

func (mp *ShiftMapperImpl) ToModel(s *shift.Shift) (*models.ShiftModel, error) {
	if s == nil {
		return nil, fmt.Errorf("shift cannot be nil")
	}

	return &models.ShiftModel{
		ID:            s.ID(),
		UUID:          s.UUID(),
		CondominiumID: s.CondominiumID(),
		GuardID:       s.GuardID(),
		StartTime:     timeToMillis(s.StartTime()),
		EndTime:       timeToMillis(s.EndTime()),
		Location:      s.Location(),
		Notes:         s.Notes(),
		Status:        string(s.Status()),
		CancelledAt:   timePtrToMillis(s.CancelledAt()),
		CreatedAt:     timeToMillis(s.CreatedAt()),
		UpdatedAt:     timeToMillis(s.UpdatedAt()),
	}, nil
}

func (mp *ShiftMapperImpl) ToDomain(m *models.ShiftModel) (*shift.Shift, error) {
	if m == nil {
		return nil, fmt.Errorf("shift model cannot be nil")
	}

	return shift.Reconstruct(
		m.ID,
		m.UUID,
		m.CondominiumID,
		m.GuardID,
		millisToTime(m.StartTime),
		millisToTime(m.EndTime),
		m.Location,
		m.Notes,
		shift.Status(m.Status),
		millisPtrToTime(m.CancelledAt),
		millisToTime(m.CreatedAt),
		millisToTime(m.UpdatedAt),
	)
}
