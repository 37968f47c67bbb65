package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/hr"
	"genturix/internal/shared/logger"
)

type ListAbsencesCommand struct {
	CondominiumID uint
	Page          int
	PageSize      int
}

type ListAbsencesResult struct {
	Absences []AbsenceView
	Total    int64
}

// ListAbsencesUseCase pages over the tenant's absence requests, newest first.
type ListAbsencesUseCase struct {
	absenceRepo hr.AbsenceRepository
	logger      logger.Interface
}

func NewListAbsencesUseCase(absenceRepo hr.AbsenceRepository, log logger.Interface) *ListAbsencesUseCase {
	return &ListAbsencesUseCase{absenceRepo: absenceRepo, logger: log}
}

func (uc *ListAbsencesUseCase) Execute(ctx context.Context, cmd ListAbsencesCommand) (*ListAbsencesResult, error) {
	requests, total, err := uc.absenceRepo.ListByCondominium(ctx, cmd.CondominiumID, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list absence requests", "error", err)
		return nil, fmt.Errorf("failed to list absence requests: %w", err)
	}

	views := make([]AbsenceView, 0, len(requests))
	for _, r := range requests {
		views = append(views, toAbsenceView(r))
	}
	return &ListAbsencesResult{Absences: views, Total: total}, nil
}
