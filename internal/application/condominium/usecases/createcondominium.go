package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/billing"
	"genturix/internal/domain/condominium"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"
)

type CreateCondominiumCommand struct {
	Name      string
	SeatCount int
	Currency  string
}

type CreateCondominiumResult struct {
	CondominiumID   uint
	CondominiumUUID string
}

type CreateCondominiumUseCase struct {
	condoRepo condominium.Repository
	logger    logger.Interface
}

func NewCreateCondominiumUseCase(condoRepo condominium.Repository, log logger.Interface) *CreateCondominiumUseCase {
	return &CreateCondominiumUseCase{
		condoRepo: condoRepo,
		logger:    log,
	}
}

func (uc *CreateCondominiumUseCase) Execute(ctx context.Context, cmd CreateCondominiumCommand) (*CreateCondominiumResult, error) {
	if cmd.Name == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if cmd.SeatCount < 1 {
		return nil, errors.NewValidationError("seat count must be at least 1")
	}
	if cmd.Currency == "" {
		cmd.Currency = "USD"
	}
	if !billing.SupportedCurrencies[cmd.Currency] {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported currency: %s", cmd.Currency))
	}

	condo, err := condominium.NewCondominium(cmd.Name, cmd.SeatCount, cmd.Currency)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.condoRepo.Create(ctx, condo); err != nil {
		uc.logger.Errorw("failed to create condominium", "error", err)
		return nil, fmt.Errorf("failed to create condominium: %w", err)
	}

	uc.logger.Infow("condominium created", "condominium_uuid", condo.UUID(), "name", condo.Name())

	return &CreateCondominiumResult{
		CondominiumID:   condo.ID(),
		CondominiumUUID: condo.UUID(),
	}, nil
}
