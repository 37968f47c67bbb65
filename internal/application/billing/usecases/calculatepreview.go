package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/billing"
	"genturix/internal/domain/condominium"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"
)

type CalculatePreviewCommand struct {
	CondominiumUUID string
}

type CalculatePreviewResult struct {
	Preview billing.Preview
}

// CalculatePreviewUseCase computes a tenant's billing snapshot: occupied
// seats times the resolved seat price, plus the running ledger balance.
type CalculatePreviewUseCase struct {
	condoRepo   condominium.Repository
	pricingRepo billing.PricingRepository
	ledgerRepo  billing.LedgerRepository
	logger      logger.Interface
}

func NewCalculatePreviewUseCase(
	condoRepo condominium.Repository,
	pricingRepo billing.PricingRepository,
	ledgerRepo billing.LedgerRepository,
	log logger.Interface,
) *CalculatePreviewUseCase {
	return &CalculatePreviewUseCase{
		condoRepo:   condoRepo,
		pricingRepo: pricingRepo,
		ledgerRepo:  ledgerRepo,
		logger:      log,
	}
}

func (uc *CalculatePreviewUseCase) Execute(ctx context.Context, cmd CalculatePreviewCommand) (*CalculatePreviewResult, error) {
	condo, err := uc.condoRepo.GetByUUID(ctx, cmd.CondominiumUUID)
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err)
		return nil, fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return nil, errors.NewNotFoundError("condominium not found")
	}

	global, err := uc.pricingRepo.GetGlobal(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get global pricing", "error", err)
		return nil, fmt.Errorf("failed to get global pricing: %w", err)
	}

	seatsUsed, err := uc.condoRepo.CountActiveSeatUsers(ctx, condo.ID())
	if err != nil {
		uc.logger.Errorw("failed to count seat users", "error", err)
		return nil, fmt.Errorf("failed to count seat users: %w", err)
	}

	balance, err := uc.ledgerRepo.Balance(ctx, condo.ID())
	if err != nil {
		uc.logger.Errorw("failed to get ledger balance", "error", err)
		return nil, fmt.Errorf("failed to get ledger balance: %w", err)
	}

	override := condo.SeatPriceOverride()
	price := billing.ResolveSeatPrice(override, global)

	return &CalculatePreviewResult{Preview: billing.Preview{
		CondominiumUUID: condo.UUID(),
		SeatsUsed:       seatsUsed,
		SeatCount:       condo.SeatCount(),
		SeatPriceCents:  price,
		TotalDueCents:   seatsUsed * price,
		BalanceCents:    balance,
		Currency:        global.Currency,
		OverrideApplied: override != nil && *override > 0,
	}}, nil
}
