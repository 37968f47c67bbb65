package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/visitor"
	"genturix/internal/shared/logger"
)

type VisitorsInsideCommand struct {
	CondominiumID uint
}

type VisitorsInsideResult struct {
	Entries []EntryView
}

// VisitorsInsideUseCase lists the tenant's visitors currently on-premises.
type VisitorsInsideUseCase struct {
	entryRepo visitor.EntryRepository
	logger    logger.Interface
}

func NewVisitorsInsideUseCase(entryRepo visitor.EntryRepository, log logger.Interface) *VisitorsInsideUseCase {
	return &VisitorsInsideUseCase{entryRepo: entryRepo, logger: log}
}

func (uc *VisitorsInsideUseCase) Execute(ctx context.Context, cmd VisitorsInsideCommand) (*VisitorsInsideResult, error) {
	entries, err := uc.entryRepo.ListInside(ctx, cmd.CondominiumID)
	if err != nil {
		uc.logger.Errorw("failed to list inside visitors", "error", err)
		return nil, fmt.Errorf("failed to list inside visitors: %w", err)
	}

	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, toEntryView(e))
	}
	return &VisitorsInsideResult{Entries: views}, nil
}
