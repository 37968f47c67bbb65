package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/hr"
	"genturix/internal/shared/logger"
)

type ListAttendanceCommand struct {
	CondominiumID uint
	Page          int
	PageSize      int
}

type ListAttendanceResult struct {
	Records []AttendanceView
	Total   int64
}

// ListAttendanceUseCase pages over the tenant's attendance log, newest first.
type ListAttendanceUseCase struct {
	attendanceRepo hr.AttendanceRepository
	logger         logger.Interface
}

func NewListAttendanceUseCase(attendanceRepo hr.AttendanceRepository, log logger.Interface) *ListAttendanceUseCase {
	return &ListAttendanceUseCase{attendanceRepo: attendanceRepo, logger: log}
}

func (uc *ListAttendanceUseCase) Execute(ctx context.Context, cmd ListAttendanceCommand) (*ListAttendanceResult, error) {
	records, total, err := uc.attendanceRepo.ListByCondominium(ctx, cmd.CondominiumID, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list attendance", "error", err)
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	views := make([]AttendanceView, 0, len(records))
	for _, a := range records {
		views = append(views, toAttendanceView(a))
	}
	return &ListAttendanceResult{Records: views, Total: total}, nil
}
