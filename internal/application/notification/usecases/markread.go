package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/notification"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"
)

type MarkReadCommand struct {
	RecipientID      uint
	NotificationUUID string
}

type MarkReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkReadUseCase(notificationRepo notification.Repository, log logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{
		notificationRepo: notificationRepo,
		logger:           log,
	}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) error {
	if cmd.NotificationUUID == "" {
		return errors.NewValidationError("notification id is required")
	}

	err := uc.notificationRepo.MarkRead(ctx, cmd.RecipientID, cmd.NotificationUUID)
	if err != nil {
		if err == notification.ErrNotFound {
			return errors.NewNotFoundError("notification not found")
		}
		uc.logger.Errorw("failed to mark notification read", "error", err)
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
