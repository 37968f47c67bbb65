package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/billing"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/i18n"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
)

type GetGlobalPricingResult struct {
	Pricing billing.GlobalPricing
}

// GetGlobalPricingUseCase returns the platform-wide seat pricing record.
type GetGlobalPricingUseCase struct {
	pricingRepo billing.PricingRepository
	logger      logger.Interface
}

func NewGetGlobalPricingUseCase(pricingRepo billing.PricingRepository, log logger.Interface) *GetGlobalPricingUseCase {
	return &GetGlobalPricingUseCase{pricingRepo: pricingRepo, logger: log}
}

func (uc *GetGlobalPricingUseCase) Execute(ctx context.Context) (*GetGlobalPricingResult, error) {
	pricing, err := uc.pricingRepo.GetGlobal(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get global pricing", "error", err)
		return nil, fmt.Errorf("failed to get global pricing: %w", err)
	}
	return &GetGlobalPricingResult{Pricing: pricing}, nil
}

type SetGlobalPricingCommand struct {
	SeatPriceCents int64
	Currency       string

	ActorUUID string
	IPAddress string
	UserAgent string
}

// SetGlobalPricingUseCase replaces the global seat price. Validation rejects
// non-positive prices and unknown currencies before the record is touched.
type SetGlobalPricingUseCase struct {
	pricingRepo billing.PricingRepository
	recorder    *auditusecases.Recorder
	logger      logger.Interface
}

func NewSetGlobalPricingUseCase(pricingRepo billing.PricingRepository, recorder *auditusecases.Recorder, log logger.Interface) *SetGlobalPricingUseCase {
	return &SetGlobalPricingUseCase{
		pricingRepo: pricingRepo,
		recorder:    recorder,
		logger:      log,
	}
}

func (uc *SetGlobalPricingUseCase) Execute(ctx context.Context, cmd SetGlobalPricingCommand) (*GetGlobalPricingResult, error) {
	pricing := billing.GlobalPricing{SeatPriceCents: cmd.SeatPriceCents, Currency: cmd.Currency}
	if err := pricing.Validate(); err != nil {
		if stderrors.Is(err, billing.ErrUnsupportedCurrency) {
			return nil, errors.NewValidationError(i18n.MsgUnsupportedCurrency, i18n.Default(i18n.MsgUnsupportedCurrency))
		}
		return nil, errors.NewValidationError(i18n.MsgInvalidSeatPrice, i18n.Default(i18n.MsgInvalidSeatPrice))
	}

	if err := uc.pricingRepo.SetGlobal(ctx, pricing); err != nil {
		uc.logger.Errorw("failed to set global pricing", "error", err)
		return nil, fmt.Errorf("failed to set global pricing: %w", err)
	}

	uc.recorder.Record(ctx, audit.EventPricingChanged, cmd.ActorUUID, nil,
		"pricing/global",
		fmt.Sprintf("global seat price set to %d %s", cmd.SeatPriceCents, cmd.Currency),
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("global pricing updated",
		"seat_price_cents", cmd.SeatPriceCents,
		"currency", cmd.Currency)

	return &GetGlobalPricingResult{Pricing: pricing}, nil
}
