package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/billing"
	"genturix/internal/domain/condominium"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/i18n"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
)

type DecideSeatUpgradeCommand struct {
	RequestUUID string
	DecidedBy   uint
	Approved    bool
	Notes       string

	ActorUUID string
	IPAddress string
	UserAgent string
}

type DecideSeatUpgradeResult struct {
	Request   SeatUpgradeView
	SeatCount int
}

// DecideSeatUpgradeUseCase approves or rejects a pending seat upgrade.
// Approval raises the tenant's seat allowance and leaves a seat_change
// ledger entry. Deciding an already-decided request reports not found: the
// pending request the caller pointed at no longer exists.
type DecideSeatUpgradeUseCase struct {
	upgradeRepo billing.UpgradeRepository
	condoRepo   condominium.Repository
	ledgerRepo  billing.LedgerRepository
	recorder    *auditusecases.Recorder
	logger      logger.Interface
}

func NewDecideSeatUpgradeUseCase(
	upgradeRepo billing.UpgradeRepository,
	condoRepo condominium.Repository,
	ledgerRepo billing.LedgerRepository,
	recorder *auditusecases.Recorder,
	log logger.Interface,
) *DecideSeatUpgradeUseCase {
	return &DecideSeatUpgradeUseCase{
		upgradeRepo: upgradeRepo,
		condoRepo:   condoRepo,
		ledgerRepo:  ledgerRepo,
		recorder:    recorder,
		logger:      log,
	}
}

func (uc *DecideSeatUpgradeUseCase) Execute(ctx context.Context, cmd DecideSeatUpgradeCommand) (*DecideSeatUpgradeResult, error) {
	request, err := uc.upgradeRepo.GetByUUID(ctx, cmd.RequestUUID)
	if err != nil {
		uc.logger.Errorw("failed to get seat upgrade request", "error", err)
		return nil, fmt.Errorf("failed to get seat upgrade request: %w", err)
	}
	if request == nil {
		return nil, errors.NewNotFoundError(i18n.MsgRequestDecided, i18n.Default(i18n.MsgRequestDecided))
	}

	if err := request.Decide(cmd.Approved, cmd.DecidedBy, cmd.Notes); err != nil {
		if stderrors.Is(err, billing.ErrRequestDecided) {
			return nil, errors.NewNotFoundError(i18n.MsgRequestDecided, i18n.Default(i18n.MsgRequestDecided))
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.upgradeRepo.UpdateDecision(ctx, request); err != nil {
		if stderrors.Is(err, billing.ErrRequestDecided) {
			// Another decision won the conditional update.
			return nil, errors.NewNotFoundError(i18n.MsgRequestDecided, i18n.Default(i18n.MsgRequestDecided))
		}
		uc.logger.Errorw("failed to persist decision", "request_uuid", cmd.RequestUUID, "error", err)
		return nil, fmt.Errorf("failed to persist decision: %w", err)
	}

	condo, err := uc.condoRepo.GetByID(ctx, request.CondominiumID())
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err)
		return nil, fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return nil, errors.NewNotFoundError("condominium not found")
	}

	if cmd.Approved {
		if err := condo.SetSeatCount(request.RequestedSeats()); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.condoRepo.Update(ctx, condo); err != nil {
			uc.logger.Errorw("failed to update seat count", "error", err)
			return nil, fmt.Errorf("failed to update seat count: %w", err)
		}

		decidedBy := cmd.DecidedBy
		tx := billing.NewTransaction(condo.ID(), billing.TransactionSeatChange, 0, condo.Currency(), false, &decidedBy,
			fmt.Sprintf("seat allowance changed to %d", request.RequestedSeats()))
		if err := uc.ledgerRepo.Append(ctx, tx); err != nil {
			uc.logger.Errorw("failed to record seat change", "error", err)
			return nil, fmt.Errorf("failed to record seat change: %w", err)
		}
	}

	condoID := condo.ID()
	uc.recorder.Record(ctx, audit.EventSeatUpgradeDecided, cmd.ActorUUID, &condoID,
		fmt.Sprintf("seat_upgrade/%s", request.UUID()),
		fmt.Sprintf("seat upgrade to %d %s", request.RequestedSeats(), request.Status()),
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("seat upgrade decided",
		"request_uuid", request.UUID(),
		"approved", cmd.Approved,
		"condominium_id", condo.ID())

	return &DecideSeatUpgradeResult{
		Request:   toSeatUpgradeView(request),
		SeatCount: condo.SeatCount(),
	}, nil
}
