package mappers

import (
	"fmt"

	"genturix/internal/domain/hr"
	"genturix/internal/infrastructure/persistence/models"
)

type AttendanceMapper interface {
	ToModel(a *hr.Attendance) (*models.AttendanceModel, error)
	ToDomain(m *models.AttendanceModel) (*hr.Attendance, error)
}

type AttendanceMapperImpl struct{}

func NewAttendanceMapper() AttendanceMapper {
	return &AttendanceMapperImpl{}
}

func (mp *AttendanceMapperImpl) ToModel(a *hr.Attendance) (*models.AttendanceModel, error) {
	if a == nil {
		return nil, fmt.Errorf("attendance cannot be nil")
	}

	return &models.AttendanceModel{
		ID:            a.ID(),
		UUID:          a.UUID(),
		CondominiumID: a.CondominiumID(),
		UserID:        a.UserID(),
		ClockInAt:     timeToMillis(a.ClockInAt()),
		ClockOutAt:    timePtrToMillis(a.ClockOutAt()),
		Notes:         a.Notes(),
	}, nil
}

func (mp *AttendanceMapperImpl) ToDomain(m *models.AttendanceModel) (*hr.Attendance, error) {
	if m == nil {
		return nil, fmt.Errorf("attendance model cannot be nil")
	}

	return hr.ReconstructAttendance(
		m.ID,
		m.UUID,
		m.CondominiumID,
		m.UserID,
		millisToTime(m.ClockInAt),
		millisPtrToTime(m.ClockOutAt),
		m.Notes,
	)
}

type AbsenceMapper interface {
	ToModel(r *hr.AbsenceRequest) (*models.AbsenceRequestModel, error)
	ToDomain(m *models.AbsenceRequestModel) (*hr.AbsenceRequest, error)
}

type AbsenceMapperImpl struct{}

func NewAbsenceMapper() AbsenceMapper {
	return &AbsenceMapperImpl{}
}

func (mp *AbsenceMapperImpl) ToModel(r *hr.AbsenceRequest) (*models.AbsenceRequestModel, error) {
	if r == nil {
		return nil, fmt.Errorf("absence request cannot be nil")
	}

	return &models.AbsenceRequestModel{
		ID:            r.ID(),
		UUID:          r.UUID(),
		CondominiumID: r.CondominiumID(),
		UserID:        r.UserID(),
		FromDate:      timeToMillis(r.FromDate()),
		ToDate:        timeToMillis(r.ToDate()),
		Reason:        r.Reason(),
		Status:        string(r.Status()),
		DecidedBy:     r.DecidedBy(),
		DecisionNotes: r.DecisionNotes(),
		CreatedAt:     timeToMillis(r.CreatedAt()),
		UpdatedAt:     timeToMillis(r.UpdatedAt()),
	}, nil
}

func (mp *AbsenceMapperImpl) ToDomain(m *models.AbsenceRequestModel) (*hr.AbsenceRequest, error) {
	if m == nil {
		return nil, fmt.Errorf("absence request model cannot be nil")
	}

	return hr.ReconstructAbsenceRequest(
		m.ID,
		m.UUID,
		m.CondominiumID,
		m.UserID,
		millisToTime(m.FromDate),
		millisToTime(m.ToDate),
		m.Reason,
		hr.AbsenceStatus(m.Status),
		m.DecidedBy,
		m.DecisionNotes,
		millisToTime(m.CreatedAt),
		millisToTime(m.UpdatedAt),
	)
}
