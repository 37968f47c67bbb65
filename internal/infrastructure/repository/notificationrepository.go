package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"genturix/internal/domain/notification"
	"genturix/internal/infrastructure/persistence/mappers"
	"genturix/internal/infrastructure/persistence/models"
	"genturix/internal/shared/db"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(database *gorm.DB) notification.Repository {
	return &NotificationRepositoryImpl{
		db:     database,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *NotificationRepositoryImpl) CreateBatch(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	modelList := make([]*models.NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		model, err := r.mapper.ToModel(n)
		if err != nil {
			return fmt.Errorf("failed to map notification to model: %w", err)
		}
		modelList = append(modelList, model)
	}

	if err := r.conn(ctx).Create(&modelList).Error; err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}

	for i, n := range notifications {
		if err := n.SetID(modelList[i].ID); err != nil {
			return fmt.Errorf("failed to set notification ID: %w", err)
		}
	}
	return nil
}

func (r *NotificationRepositoryImpl) ListByRecipient(ctx context.Context, recipientID uint, unreadOnly bool, page, pageSize int) ([]*notification.Notification, int64, error) {
	query := r.conn(ctx).Model(&models.NotificationModel{}).Where("recipient_id = ?", recipientID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var modelList []*models.NotificationModel
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	items := make([]*notification.Notification, 0, len(modelList))
	for _, m := range modelList {
		n, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map notification model: %w", err)
		}
		items = append(items, n)
	}
	return items, total, nil
}

// MarkRead scopes the update to the recipient so users cannot flag each
// other's notifications.
func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, recipientID uint, notificationUUID string) error {
	result := r.conn(ctx).
		Model(&models.NotificationModel{}).
		Where("uuid = ? AND recipient_id = ?", notificationUUID, recipientID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notification.ErrNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&models.NotificationModel{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
