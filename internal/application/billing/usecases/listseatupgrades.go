package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/billing"
	"genturix/internal/shared/logger"
)

type ListSeatUpgradesCommand struct {
	CondominiumID *uint // nil lists all tenants (SuperAdmin view)
	Page          int
	PageSize      int
}

type ListSeatUpgradesResult struct {
	Requests []SeatUpgradeView
	Total    int64
}

// ListSeatUpgradesUseCase pages over seat upgrade requests, newest first.
type ListSeatUpgradesUseCase struct {
	upgradeRepo billing.UpgradeRepository
	logger      logger.Interface
}

func NewListSeatUpgradesUseCase(upgradeRepo billing.UpgradeRepository, log logger.Interface) *ListSeatUpgradesUseCase {
	return &ListSeatUpgradesUseCase{upgradeRepo: upgradeRepo, logger: log}
}

func (uc *ListSeatUpgradesUseCase) Execute(ctx context.Context, cmd ListSeatUpgradesCommand) (*ListSeatUpgradesResult, error) {
	requests, total, err := uc.upgradeRepo.List(ctx, cmd.CondominiumID, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list seat upgrade requests", "error", err)
		return nil, fmt.Errorf("failed to list seat upgrade requests: %w", err)
	}

	views := make([]SeatUpgradeView, 0, len(requests))
	for _, r := range requests {
		views = append(views, toSeatUpgradeView(r))
	}
	return &ListSeatUpgradesResult{Requests: views, Total: total}, nil
}
