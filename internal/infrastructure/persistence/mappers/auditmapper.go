package mappers

import (
	"genturix/internal/domain/audit"
	"genturix/internal/infrastructure/persistence/models"
)

// AuditMapper converts audit entries. Entries are plain immutable structs.
type AuditMapper interface {
	ToModel(e *audit.Entry) *models.AuditLogModel
	ToDomain(m *models.AuditLogModel) *audit.Entry
}

type AuditMapperImpl struct{}

func NewAuditMapper() AuditMapper {
	return &AuditMapperImpl{}
}

func (mp *AuditMapperImpl) ToModel(e *audit.Entry) *models.AuditLogModel {
	return &models.AuditLogModel{
		ID:            e.ID,
		UUID:          e.UUID,
		EventType:     string(e.EventType),
		UserUUID:      e.UserUUID,
		CondominiumID: e.CondominiumID,
		Resource:      e.Resource,
		Details:       e.Details,
		IPAddress:     e.IPAddress,
		UserAgent:     e.UserAgent,
		CreatedAt:     timeToMillis(e.CreatedAt),
	}
}

func (mp *AuditMapperImpl) ToDomain(m *models.AuditLogModel) *audit.Entry {
	return &audit.Entry{
		ID:            m.ID,
		UUID:          m.UUID,
		EventType:     audit.EventType(m.EventType),
		UserUUID:      m.UserUUID,
		CondominiumID: m.CondominiumID,
		Resource:      m.Resource,
		Details:       m.Details,
		IPAddress:     m.IPAddress,
		UserAgent:     m.UserAgent,
		CreatedAt:     millisToTime(m.CreatedAt),
	}
}
