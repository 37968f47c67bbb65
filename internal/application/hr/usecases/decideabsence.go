package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"genturix/internal/domain/hr"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"
)

type DecideAbsenceCommand struct {
	AbsenceUUID   string
	CondominiumID uint
	DecidedBy     uint
	Approved      bool
	Notes         string
}

type DecideAbsenceResult struct {
	Absence AbsenceView
}

// DecideAbsenceUseCase approves or rejects a pending absence request.
type DecideAbsenceUseCase struct {
	absenceRepo hr.AbsenceRepository
	logger      logger.Interface
}

func NewDecideAbsenceUseCase(absenceRepo hr.AbsenceRepository, log logger.Interface) *DecideAbsenceUseCase {
	return &DecideAbsenceUseCase{absenceRepo: absenceRepo, logger: log}
}

func (uc *DecideAbsenceUseCase) Execute(ctx context.Context, cmd DecideAbsenceCommand) (*DecideAbsenceResult, error) {
	request, err := uc.absenceRepo.GetByUUID(ctx, cmd.AbsenceUUID)
	if err != nil {
		uc.logger.Errorw("failed to get absence request", "error", err)
		return nil, fmt.Errorf("failed to get absence request: %w", err)
	}
	if request == nil || request.CondominiumID() != cmd.CondominiumID {
		return nil, errors.NewNotFoundError("absence request not found")
	}

	if err := request.Decide(cmd.Approved, cmd.DecidedBy, cmd.Notes); err != nil {
		if stderrors.Is(err, hr.ErrAbsenceDecided) {
			return nil, errors.NewConflictError("absence request already decided")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.absenceRepo.Update(ctx, request); err != nil {
		uc.logger.Errorw("failed to update absence request", "absence_uuid", cmd.AbsenceUUID, "error", err)
		return nil, fmt.Errorf("failed to update absence request: %w", err)
	}

	uc.logger.Infow("absence decided",
		"absence_uuid", request.UUID(),
		"approved", cmd.Approved,
		"condominium_id", cmd.CondominiumID)

	return &DecideAbsenceResult{Absence: toAbsenceView(request)}, nil
}
