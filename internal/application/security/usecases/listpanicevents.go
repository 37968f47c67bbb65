package usecases

import (
	"context"
	"fmt"
	"time"

	"genturix/internal/domain/panicalert"
	"genturix/internal/shared/logger"
)

// PanicEventView is the read model for a panic event.
type PanicEventView struct {
	UUID            string
	PanicType       string
	Location        string
	Latitude        *float64
	Longitude       *float64
	Description     string
	Status          panicalert.Status
	ResolutionNotes string
	ResolvedBy      *uint
	ResolvedAt      *time.Time
	CreatedAt       time.Time
}

func toPanicEventView(e *panicalert.Event) PanicEventView {
	return PanicEventView{
		UUID:            e.UUID(),
		PanicType:       e.PanicType(),
		Location:        e.Location(),
		Latitude:        e.Latitude(),
		Longitude:       e.Longitude(),
		Description:     e.Description(),
		Status:          e.Status(),
		ResolutionNotes: e.ResolutionNotes(),
		ResolvedBy:      e.ResolvedBy(),
		ResolvedAt:      e.ResolvedAt(),
		CreatedAt:       e.CreatedAt(),
	}
}

type ListPanicEventsCommand struct {
	CondominiumID uint
	ActiveOnly    bool
	Page          int
	PageSize      int
}

type ListPanicEventsResult struct {
	Events []PanicEventView
	Total  int64
}

// ListPanicEventsUseCase pages over the tenant's alerts, newest first.
type ListPanicEventsUseCase struct {
	panicRepo panicalert.Repository
	logger    logger.Interface
}

func NewListPanicEventsUseCase(panicRepo panicalert.Repository, log logger.Interface) *ListPanicEventsUseCase {
	return &ListPanicEventsUseCase{panicRepo: panicRepo, logger: log}
}

func (uc *ListPanicEventsUseCase) Execute(ctx context.Context, cmd ListPanicEventsCommand) (*ListPanicEventsResult, error) {
	events, total, err := uc.panicRepo.ListByCondominium(ctx, cmd.CondominiumID, cmd.ActiveOnly, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list panic events", "error", err)
		return nil, fmt.Errorf("failed to list panic events: %w", err)
	}

	views := make([]PanicEventView, 0, len(events))
	for _, e := range events {
		views = append(views, toPanicEventView(e))
	}
	return &ListPanicEventsResult{Events: views, Total: total}, nil
}
