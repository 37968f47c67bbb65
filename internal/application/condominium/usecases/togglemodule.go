package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/condominium"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
)

type ToggleModuleCommand struct {
	CondominiumUUID string
	ModuleName      string
	Enabled         bool

	ActorUUID string
	IPAddress string
	UserAgent string
}

type ToggleModuleResult struct {
	ModuleName string
	Enabled    bool
}

// ToggleModuleUseCase flips a tenant module on or off. Gated endpoints pick
// the change up on the next request; nothing is cached across requests.
type ToggleModuleUseCase struct {
	condoRepo condominium.Repository
	recorder  *auditusecases.Recorder
	logger    logger.Interface
}

func NewToggleModuleUseCase(condoRepo condominium.Repository, recorder *auditusecases.Recorder, log logger.Interface) *ToggleModuleUseCase {
	return &ToggleModuleUseCase{
		condoRepo: condoRepo,
		recorder:  recorder,
		logger:    log,
	}
}

func (uc *ToggleModuleUseCase) Execute(ctx context.Context, cmd ToggleModuleCommand) (*ToggleModuleResult, error) {
	module := condominium.ModuleName(cmd.ModuleName)
	if !module.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown module: %s", cmd.ModuleName))
	}

	condo, err := uc.condoRepo.GetByUUID(ctx, cmd.CondominiumUUID)
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err)
		return nil, fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return nil, errors.NewNotFoundError("condominium not found")
	}

	if err := condo.SetModule(module, cmd.Enabled); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.condoRepo.Update(ctx, condo); err != nil {
		uc.logger.Errorw("failed to update condominium", "error", err)
		return nil, fmt.Errorf("failed to update condominium: %w", err)
	}

	condoID := condo.ID()
	uc.recorder.Record(ctx, audit.EventModuleToggled, cmd.ActorUUID, &condoID,
		fmt.Sprintf("condominium/%s", condo.UUID()),
		fmt.Sprintf("module %s set to %t", cmd.ModuleName, cmd.Enabled),
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("module toggled",
		"condominium_uuid", condo.UUID(),
		"module", cmd.ModuleName,
		"enabled", cmd.Enabled)

	return &ToggleModuleResult{ModuleName: cmd.ModuleName, Enabled: cmd.Enabled}, nil
}
