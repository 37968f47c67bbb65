package usecases

import (
	"context"
	"fmt"
	"time"

	"genturix/internal/domain/shift"
	"genturix/internal/shared/logger"
)

// ShiftView is the read model for a scheduled shift.
type ShiftView struct {
	UUID        string
	GuardID     uint
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Notes       string
	Status      shift.Status
	CancelledAt *time.Time
}

func toShiftView(s *shift.Shift) ShiftView {
	return ShiftView{
		UUID:        s.UUID(),
		GuardID:     s.GuardID(),
		StartTime:   s.StartTime(),
		EndTime:     s.EndTime(),
		Location:    s.Location(),
		Notes:       s.Notes(),
		Status:      s.Status(),
		CancelledAt: s.CancelledAt(),
	}
}

type ListShiftsCommand struct {
	CondominiumID uint
	GuardID       *uint
	ActiveOnly    bool
	Page          int
	PageSize      int
}

type ListShiftsResult struct {
	Shifts []ShiftView
	Total  int64
}

// ListShiftsUseCase pages over a tenant's shift schedule ordered by start
// time. Active-only listings exclude cancelled shifts.
type ListShiftsUseCase struct {
	shiftRepo shift.Repository
	logger    logger.Interface
}

func NewListShiftsUseCase(shiftRepo shift.Repository, log logger.Interface) *ListShiftsUseCase {
	return &ListShiftsUseCase{shiftRepo: shiftRepo, logger: log}
}

func (uc *ListShiftsUseCase) Execute(ctx context.Context, cmd ListShiftsCommand) (*ListShiftsResult, error) {
	shifts, total, err := uc.shiftRepo.List(ctx, cmd.CondominiumID, shift.ListFilter{
		Page:       cmd.Page,
		PageSize:   cmd.PageSize,
		GuardID:    cmd.GuardID,
		ActiveOnly: cmd.ActiveOnly,
	})
	if err != nil {
		uc.logger.Errorw("failed to list shifts", "error", err)
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	views := make([]ShiftView, 0, len(shifts))
	for _, s := range shifts {
		views = append(views, toShiftView(s))
	}
	return &ListShiftsResult{Shifts: views, Total: total}, nil
}
