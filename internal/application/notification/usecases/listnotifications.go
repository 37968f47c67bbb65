package usecases

import (
	"context"
	"fmt"
	"time"

	"genturix/internal/domain/notification"
	"genturix/internal/shared/logger"
)

type ListNotificationsCommand struct {
	RecipientID uint
	UnreadOnly  bool
	Page        int
	PageSize    int
}

type NotificationSummary struct {
	UUID      string            `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"created_at"`
}

type ListNotificationsResult struct {
	Notifications []NotificationSummary
	Total         int64
	Unread        int64
}

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.Repository, log logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           log,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, cmd ListNotificationsCommand) (*ListNotificationsResult, error) {
	items, total, err := uc.notificationRepo.ListByRecipient(ctx, cmd.RecipientID, cmd.UnreadOnly, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := uc.notificationRepo.CountUnread(ctx, cmd.RecipientID)
	if err != nil {
		uc.logger.Warnw("failed to count unread notifications", "error", err)
	}

	summaries := make([]NotificationSummary, 0, len(items))
	for _, n := range items {
		summaries = append(summaries, NotificationSummary{
			UUID:      n.UUID(),
			Type:      string(n.Type()),
			Title:     n.Title(),
			Body:      n.Body(),
			Data:      n.Data(),
			Read:      n.Read(),
			CreatedAt: n.CreatedAt(),
		})
	}

	return &ListNotificationsResult{
		Notifications: summaries,
		Total:         total,
		Unread:        unread,
	}, nil
}
