package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/notification"
	"genturix/internal/domain/user"
	"genturix/internal/shared/logger"
)

// Fanout delivers in-app notifications to every guard of a tenant. Delivery
// is synchronous: the batch is persisted before the triggering request
// returns, so the next read of a guard's list already sees it.
type Fanout struct {
	notificationRepo notification.Repository
	userRepo         user.Repository
	logger           logger.Interface
}

func NewFanout(notificationRepo notification.Repository, userRepo user.Repository, log logger.Interface) *Fanout {
	return &Fanout{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           log,
	}
}

// NotifyGuards creates one notification per active guard of the condominium.
func (f *Fanout) NotifyGuards(ctx context.Context, condominiumID uint, notifType notification.Type, title, body string, data map[string]string) error {
	guards, err := f.userRepo.ListGuardsByCondominium(ctx, condominiumID)
	if err != nil {
		return fmt.Errorf("failed to list guards: %w", err)
	}
	if len(guards) == 0 {
		f.logger.Debugw("no guards to notify", "condominium_id", condominiumID, "type", notifType)
		return nil
	}

	batch := make([]*notification.Notification, 0, len(guards))
	for _, g := range guards {
		n, err := notification.New(condominiumID, g.ID(), notifType, title, body, data)
		if err != nil {
			return fmt.Errorf("failed to build notification: %w", err)
		}
		batch = append(batch, n)
	}

	if err := f.notificationRepo.CreateBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to persist notifications: %w", err)
	}

	f.logger.Infow("guards notified",
		"condominium_id", condominiumID,
		"type", notifType,
		"recipients", len(batch))
	return nil
}
