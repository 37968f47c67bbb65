package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/visitor"
	"genturix/internal/shared/logger"
)

type EntryHistoryCommand struct {
	CondominiumID uint
	Page          int
	PageSize      int
}

type EntryHistoryResult struct {
	Entries []EntryView
	Total   int64
}

// EntryHistoryUseCase pages over the tenant's full entry log, newest first.
type EntryHistoryUseCase struct {
	entryRepo visitor.EntryRepository
	logger    logger.Interface
}

func NewEntryHistoryUseCase(entryRepo visitor.EntryRepository, log logger.Interface) *EntryHistoryUseCase {
	return &EntryHistoryUseCase{entryRepo: entryRepo, logger: log}
}

func (uc *EntryHistoryUseCase) Execute(ctx context.Context, cmd EntryHistoryCommand) (*EntryHistoryResult, error) {
	entries, total, err := uc.entryRepo.ListHistory(ctx, cmd.CondominiumID, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list entry history", "error", err)
		return nil, fmt.Errorf("failed to list entry history: %w", err)
	}

	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, toEntryView(e))
	}
	return &EntryHistoryResult{Entries: views, Total: total}, nil
}
