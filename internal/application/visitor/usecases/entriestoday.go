package usecases

import (
	"context"
	"fmt"
	"time"

	"genturix/internal/domain/visitor"
	"genturix/internal/shared/logger"
)

type EntriesTodayCommand struct {
	CondominiumID uint
	Page          int
	PageSize      int
}

type EntriesTodayResult struct {
	Entries []EntryView
	Total   int64
}

// EntriesTodayUseCase lists the tenant's entries recorded since local
// midnight, exited ones included.
type EntriesTodayUseCase struct {
	entryRepo visitor.EntryRepository
	logger    logger.Interface
}

func NewEntriesTodayUseCase(entryRepo visitor.EntryRepository, log logger.Interface) *EntriesTodayUseCase {
	return &EntriesTodayUseCase{entryRepo: entryRepo, logger: log}
}

func (uc *EntriesTodayUseCase) Execute(ctx context.Context, cmd EntriesTodayCommand) (*EntriesTodayResult, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.Add(24 * time.Hour)

	entries, total, err := uc.entryRepo.ListBetween(ctx, cmd.CondominiumID, from, to, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list today's entries", "error", err)
		return nil, fmt.Errorf("failed to list today's entries: %w", err)
	}

	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, toEntryView(e))
	}
	return &EntriesTodayResult{Entries: views, Total: total}, nil
}
