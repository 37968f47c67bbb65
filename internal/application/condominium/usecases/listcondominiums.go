package usecases

import (
	"context"
	"fmt"
	"time"

	"genturix/internal/domain/condominium"
	"genturix/internal/shared/logger"
)

type ListCondominiumsCommand struct {
	Page     int
	PageSize int
}

type CondominiumSummary struct {
	UUID          string          `json:"id"`
	Name          string          `json:"name"`
	BillingStatus string          `json:"billing_status"`
	SeatCount     int             `json:"seat_count"`
	SeatsUsed     int64           `json:"seats_used"`
	Currency      string          `json:"currency"`
	Modules       map[string]bool `json:"modules"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ListCondominiumsResult struct {
	Condominiums []CondominiumSummary
	Total        int64
}

type ListCondominiumsUseCase struct {
	condoRepo condominium.Repository
	logger    logger.Interface
}

func NewListCondominiumsUseCase(condoRepo condominium.Repository, log logger.Interface) *ListCondominiumsUseCase {
	return &ListCondominiumsUseCase{
		condoRepo: condoRepo,
		logger:    log,
	}
}

func (uc *ListCondominiumsUseCase) Execute(ctx context.Context, cmd ListCondominiumsCommand) (*ListCondominiumsResult, error) {
	condos, total, err := uc.condoRepo.List(ctx, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list condominiums", "error", err)
		return nil, fmt.Errorf("failed to list condominiums: %w", err)
	}

	summaries := make([]CondominiumSummary, 0, len(condos))
	for _, c := range condos {
		used, err := uc.condoRepo.CountActiveSeatUsers(ctx, c.ID())
		if err != nil {
			uc.logger.Warnw("failed to count seat users", "error", err, "condominium_id", c.ID())
		}

		modules := make(map[string]bool, len(c.Modules()))
		for name, enabled := range c.Modules() {
			modules[string(name)] = enabled
		}

		summaries = append(summaries, CondominiumSummary{
			UUID:          c.UUID(),
			Name:          c.Name(),
			BillingStatus: string(c.BillingStatus()),
			SeatCount:     c.SeatCount(),
			SeatsUsed:     used,
			Currency:      c.Currency(),
			Modules:       modules,
			CreatedAt:     c.CreatedAt(),
		})
	}

	return &ListCondominiumsResult{Condominiums: summaries, Total: total}, nil
}
