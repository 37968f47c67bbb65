package mappers

import (
	"encoding/json"
	"fmt"

	"genturix/internal/domain/notification"
	"genturix/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) (*models.NotificationModel, error)
	ToDomain(m *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (mp *NotificationMapperImpl) ToModel(n *notification.Notification) (*models.NotificationModel, error) {
	if n == nil {
		return nil, fmt.Errorf("notification cannot be nil")
	}

	data, err := json.Marshal(n.Data())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification data: %w", err)
	}

	return &models.NotificationModel{
		ID:            n.ID(),
		UUID:          n.UUID(),
		CondominiumID: n.CondominiumID(),
		RecipientID:   n.RecipientID(),
		Type:          string(n.Type()),
		Title:         n.Title(),
		Body:          n.Body(),
		Data:          data,
		Read:          n.Read(),
		CreatedAt:     timeToMillis(n.CreatedAt()),
	}, nil
}

func (mp *NotificationMapperImpl) ToDomain(m *models.NotificationModel) (*notification.Notification, error) {
	if m == nil {
		return nil, fmt.Errorf("notification model cannot be nil")
	}

	var data map[string]string
	if len(m.Data) > 0 {
		if err := json.Unmarshal(m.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification data: %w", err)
		}
	}

	return notification.Reconstruct(
		m.ID,
		m.UUID,
		m.CondominiumID,
		m.RecipientID,
		notification.Type(m.Type),
		m.Title,
		m.Body,
		data,
		m.Read,
		millisToTime(m.CreatedAt),
	)
}
