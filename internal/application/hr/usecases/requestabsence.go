package usecases

import (
	"context"
	"fmt"
	"time"

	"genturix/internal/domain/hr"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"
)

// AbsenceView is the read model for an absence request.
type AbsenceView struct {
	UUID          string
	UserID        uint
	FromDate      time.Time
	ToDate        time.Time
	Reason        string
	Status        hr.AbsenceStatus
	DecidedBy     *uint
	DecisionNotes string
	CreatedAt     time.Time
}

func toAbsenceView(r *hr.AbsenceRequest) AbsenceView {
	return AbsenceView{
		UUID:          r.UUID(),
		UserID:        r.UserID(),
		FromDate:      r.FromDate(),
		ToDate:        r.ToDate(),
		Reason:        r.Reason(),
		Status:        r.Status(),
		DecidedBy:     r.DecidedBy(),
		DecisionNotes: r.DecisionNotes(),
		CreatedAt:     r.CreatedAt(),
	}
}

type RequestAbsenceCommand struct {
	CondominiumID uint
	UserID        uint
	FromDate      time.Time
	ToDate        time.Time
	Reason        string
}

type RequestAbsenceResult struct {
	Absence AbsenceView
}

// RequestAbsenceUseCase files a time-off request, pending until HR decides.
type RequestAbsenceUseCase struct {
	absenceRepo hr.AbsenceRepository
	logger      logger.Interface
}

func NewRequestAbsenceUseCase(absenceRepo hr.AbsenceRepository, log logger.Interface) *RequestAbsenceUseCase {
	return &RequestAbsenceUseCase{absenceRepo: absenceRepo, logger: log}
}

func (uc *RequestAbsenceUseCase) Execute(ctx context.Context, cmd RequestAbsenceCommand) (*RequestAbsenceResult, error) {
	request, err := hr.NewAbsenceRequest(cmd.CondominiumID, cmd.UserID, cmd.FromDate, cmd.ToDate, cmd.Reason)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.absenceRepo.Create(ctx, request); err != nil {
		uc.logger.Errorw("failed to create absence request", "error", err)
		return nil, fmt.Errorf("failed to create absence request: %w", err)
	}

	uc.logger.Infow("absence requested",
		"absence_uuid", request.UUID(),
		"user_id", cmd.UserID,
		"condominium_id", cmd.CondominiumID)

	return &RequestAbsenceResult{Absence: toAbsenceView(request)}, nil
}
