package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/billing"
	"genturix/internal/domain/condominium"
	"genturix/internal/shared/logger"
)

// CondominiumPricing is one row of the per-tenant pricing overview.
type CondominiumPricing struct {
	CondominiumUUID     string
	Name                string
	SeatCount           int
	OverrideCents       *int64
	EffectivePriceCents int64
	Currency            string
}

type ListCondominiumPricingCommand struct {
	Page     int
	PageSize int
}

type ListCondominiumPricingResult struct {
	Pricing []CondominiumPricing
	Total   int64
}

// ListCondominiumPricingUseCase resolves the effective seat price for every
// tenant, showing which ones carry an override.
type ListCondominiumPricingUseCase struct {
	condoRepo   condominium.Repository
	pricingRepo billing.PricingRepository
	logger      logger.Interface
}

func NewListCondominiumPricingUseCase(condoRepo condominium.Repository, pricingRepo billing.PricingRepository, log logger.Interface) *ListCondominiumPricingUseCase {
	return &ListCondominiumPricingUseCase{
		condoRepo:   condoRepo,
		pricingRepo: pricingRepo,
		logger:      log,
	}
}

func (uc *ListCondominiumPricingUseCase) Execute(ctx context.Context, cmd ListCondominiumPricingCommand) (*ListCondominiumPricingResult, error) {
	global, err := uc.pricingRepo.GetGlobal(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get global pricing", "error", err)
		return nil, fmt.Errorf("failed to get global pricing: %w", err)
	}

	condos, total, err := uc.condoRepo.List(ctx, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list condominiums", "error", err)
		return nil, fmt.Errorf("failed to list condominiums: %w", err)
	}

	rows := make([]CondominiumPricing, 0, len(condos))
	for _, c := range condos {
		override := c.SeatPriceOverride()
		rows = append(rows, CondominiumPricing{
			CondominiumUUID:     c.UUID(),
			Name:                c.Name(),
			SeatCount:           c.SeatCount(),
			OverrideCents:       override,
			EffectivePriceCents: billing.ResolveSeatPrice(override, global),
			Currency:            global.Currency,
		})
	}
	return &ListCondominiumPricingResult{Pricing: rows, Total: total}, nil
}
