package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/user"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"
	"genturix/internal/shared/utils"

	auditusecases "genturix/internal/application/audit/usecases"
)

type DeactivateUserCommand struct {
	UserUUID string
	// ActorCondominiumID scopes the operation; nil (SuperAdmin) reaches any
	// tenant.
	ActorCondominiumID *uint

	ActorUUID string
	IPAddress string
	UserAgent string
}

// DeactivateUserUseCase disables an account. The user keeps its history but
// can no longer log in, and a seat-occupying role frees its seat.
type DeactivateUserUseCase struct {
	userRepo user.Repository
	recorder *auditusecases.Recorder
	logger   logger.Interface
}

func NewDeactivateUserUseCase(userRepo user.Repository, recorder *auditusecases.Recorder, log logger.Interface) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{
		userRepo: userRepo,
		recorder: recorder,
		logger:   log,
	}
}

func (uc *DeactivateUserUseCase) Execute(ctx context.Context, cmd DeactivateUserCommand) error {
	target, err := uc.userRepo.GetByUUID(ctx, cmd.UserUUID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil || !sameTenant(cmd.ActorCondominiumID, target.CondominiumID()) {
		return errors.NewNotFoundError("user not found")
	}
	if target.UUID() == cmd.ActorUUID {
		return errors.NewValidationError("cannot deactivate your own account")
	}
	if !target.IsActive() {
		return errors.NewConflictError("user already deactivated")
	}

	target.Deactivate()
	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to deactivate user", "user_uuid", cmd.UserUUID, "error", err)
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	uc.recorder.Record(ctx, audit.EventUserDeactivated, cmd.ActorUUID, target.CondominiumID(),
		fmt.Sprintf("user/%s", target.UUID()),
		fmt.Sprintf("deactivated user %s", utils.MaskEmail(target.Email())),
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("user deactivated", "user_uuid", target.UUID())
	return nil
}

// sameTenant reports whether an actor scoped to actorTenant may touch a user
// of targetTenant. A nil actor tenant is platform scope.
func sameTenant(actorTenant, targetTenant *uint) bool {
	if actorTenant == nil {
		return true
	}
	return targetTenant != nil && *targetTenant == *actorTenant
}
