package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"genturix/internal/domain/billing"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/i18n"
	"genturix/internal/shared/logger"
)

// SeatUpgradeView is the read model for a seat upgrade request.
type SeatUpgradeView struct {
	UUID           string
	CondominiumID  uint
	RequestedSeats int
	Status         billing.UpgradeStatus
	DecidedBy      *uint
	DecisionNotes  string
	CreatedAt      time.Time
}

func toSeatUpgradeView(r *billing.SeatUpgradeRequest) SeatUpgradeView {
	return SeatUpgradeView{
		UUID:           r.UUID(),
		CondominiumID:  r.CondominiumID(),
		RequestedSeats: r.RequestedSeats(),
		Status:         r.Status(),
		DecidedBy:      r.DecidedBy(),
		DecisionNotes:  r.DecisionNotes(),
		CreatedAt:      r.CreatedAt(),
	}
}

type RequestSeatUpgradeCommand struct {
	CondominiumID  uint
	RequestedBy    uint
	RequestedSeats int
}

type RequestSeatUpgradeResult struct {
	Request SeatUpgradeView
}

// RequestSeatUpgradeUseCase files a seat upgrade request. At most one
// pending request per tenant; the uniqueness check runs inside the insert
// transaction so concurrent requests cannot both land.
type RequestSeatUpgradeUseCase struct {
	upgradeRepo billing.UpgradeRepository
	logger      logger.Interface
}

func NewRequestSeatUpgradeUseCase(upgradeRepo billing.UpgradeRepository, log logger.Interface) *RequestSeatUpgradeUseCase {
	return &RequestSeatUpgradeUseCase{upgradeRepo: upgradeRepo, logger: log}
}

func (uc *RequestSeatUpgradeUseCase) Execute(ctx context.Context, cmd RequestSeatUpgradeCommand) (*RequestSeatUpgradeResult, error) {
	request, err := billing.NewSeatUpgradeRequest(cmd.CondominiumID, cmd.RequestedBy, cmd.RequestedSeats)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.upgradeRepo.Create(ctx, request); err != nil {
		if stderrors.Is(err, billing.ErrPendingExists) {
			return nil, errors.NewConflictError(i18n.MsgPendingUpgradeExists, i18n.Default(i18n.MsgPendingUpgradeExists))
		}
		uc.logger.Errorw("failed to create seat upgrade request", "error", err)
		return nil, fmt.Errorf("failed to create seat upgrade request: %w", err)
	}

	uc.logger.Infow("seat upgrade requested",
		"request_uuid", request.UUID(),
		"condominium_id", cmd.CondominiumID,
		"requested_seats", cmd.RequestedSeats)

	return &RequestSeatUpgradeResult{Request: toSeatUpgradeView(request)}, nil
}
