package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/billing"
	"genturix/internal/domain/condominium"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
)

type ConfirmPaymentCommand struct {
	CondominiumUUID string
	AmountCents     int64
	Partial         bool
	RecordedBy      uint
	Notes           string

	ActorUUID string
	IPAddress string
	UserAgent string
}

type ConfirmPaymentResult struct {
	BalanceCents  int64
	BillingStatus condominium.BillingStatus
}

// ConfirmPaymentUseCase records a received payment as a negative ledger
// entry and re-derives the tenant's billing status from the new balance.
type ConfirmPaymentUseCase struct {
	condoRepo  condominium.Repository
	ledgerRepo billing.LedgerRepository
	recorder   *auditusecases.Recorder
	logger     logger.Interface
}

func NewConfirmPaymentUseCase(
	condoRepo condominium.Repository,
	ledgerRepo billing.LedgerRepository,
	recorder *auditusecases.Recorder,
	log logger.Interface,
) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{
		condoRepo:  condoRepo,
		ledgerRepo: ledgerRepo,
		recorder:   recorder,
		logger:     log,
	}
}

func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, cmd ConfirmPaymentCommand) (*ConfirmPaymentResult, error) {
	if cmd.AmountCents <= 0 {
		return nil, errors.NewValidationError("payment amount must be greater than zero")
	}

	condo, err := uc.condoRepo.GetByUUID(ctx, cmd.CondominiumUUID)
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err)
		return nil, fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return nil, errors.NewNotFoundError("condominium not found")
	}

	recordedBy := cmd.RecordedBy
	tx := billing.NewTransaction(condo.ID(), billing.TransactionPayment, -cmd.AmountCents, condo.Currency(), cmd.Partial, &recordedBy, cmd.Notes)
	if err := uc.ledgerRepo.Append(ctx, tx); err != nil {
		uc.logger.Errorw("failed to record payment", "error", err)
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	balance, err := uc.ledgerRepo.Balance(ctx, condo.ID())
	if err != nil {
		uc.logger.Errorw("failed to get ledger balance", "error", err)
		return nil, fmt.Errorf("failed to get ledger balance: %w", err)
	}

	status := condominium.BillingPaymentPending
	if balance <= 0 {
		status = condominium.BillingActive
	}
	if status != condo.BillingStatus() {
		if err := condo.SetBillingStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.condoRepo.Update(ctx, condo); err != nil {
			uc.logger.Errorw("failed to update billing status", "error", err)
			return nil, fmt.Errorf("failed to update billing status: %w", err)
		}
	}

	condoID := condo.ID()
	uc.recorder.Record(ctx, audit.EventPaymentConfirmed, cmd.ActorUUID, &condoID,
		fmt.Sprintf("condominium/%s", condo.UUID()),
		fmt.Sprintf("payment of %d cents confirmed (partial=%t)", cmd.AmountCents, cmd.Partial),
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("payment confirmed",
		"condominium_uuid", condo.UUID(),
		"amount_cents", cmd.AmountCents,
		"balance_cents", balance,
		"billing_status", status)

	return &ConfirmPaymentResult{BalanceCents: balance, BillingStatus: status}, nil
}
