package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/billing"
	"genturix/internal/domain/condominium"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/i18n"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
)

type SetPriceOverrideCommand struct {
	CondominiumUUID string
	SeatPriceCents  int64 // zero clears the override, restoring the global price

	ActorUUID string
	IPAddress string
	UserAgent string
}

type SetPriceOverrideResult struct {
	EffectivePriceCents int64
	OverrideApplied     bool
}

// SetPriceOverrideUseCase sets or clears a tenant's seat price override.
// A cleared override follows the global price, including future changes.
type SetPriceOverrideUseCase struct {
	condoRepo   condominium.Repository
	pricingRepo billing.PricingRepository
	recorder    *auditusecases.Recorder
	logger      logger.Interface
}

func NewSetPriceOverrideUseCase(
	condoRepo condominium.Repository,
	pricingRepo billing.PricingRepository,
	recorder *auditusecases.Recorder,
	log logger.Interface,
) *SetPriceOverrideUseCase {
	return &SetPriceOverrideUseCase{
		condoRepo:   condoRepo,
		pricingRepo: pricingRepo,
		recorder:    recorder,
		logger:      log,
	}
}

func (uc *SetPriceOverrideUseCase) Execute(ctx context.Context, cmd SetPriceOverrideCommand) (*SetPriceOverrideResult, error) {
	if cmd.SeatPriceCents < 0 {
		return nil, errors.NewValidationError(i18n.MsgInvalidSeatPrice, i18n.Default(i18n.MsgInvalidSeatPrice))
	}

	condo, err := uc.condoRepo.GetByUUID(ctx, cmd.CondominiumUUID)
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err)
		return nil, fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return nil, errors.NewNotFoundError("condominium not found")
	}

	if err := condo.SetPriceOverride(cmd.SeatPriceCents); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.condoRepo.Update(ctx, condo); err != nil {
		uc.logger.Errorw("failed to update condominium", "error", err)
		return nil, fmt.Errorf("failed to update condominium: %w", err)
	}

	global, err := uc.pricingRepo.GetGlobal(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get global pricing", "error", err)
		return nil, fmt.Errorf("failed to get global pricing: %w", err)
	}
	override := condo.SeatPriceOverride()

	condoID := condo.ID()
	uc.recorder.Record(ctx, audit.EventPricingChanged, cmd.ActorUUID, &condoID,
		fmt.Sprintf("condominium/%s", condo.UUID()),
		fmt.Sprintf("seat price override set to %d", cmd.SeatPriceCents),
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("price override updated",
		"condominium_uuid", condo.UUID(),
		"override_cents", cmd.SeatPriceCents)

	return &SetPriceOverrideResult{
		EffectivePriceCents: billing.ResolveSeatPrice(override, global),
		OverrideApplied:     override != nil && *override > 0,
	}, nil
}
