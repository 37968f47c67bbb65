package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/visitor"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/i18n"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
)

type DeleteAuthorizationCommand struct {
	AuthorizationUUID string
	CondominiumID     uint
	ResidentID        uint

	ActorUUID string
	IPAddress string
	UserAgent string
}

// DeleteAuthorizationUseCase removes a resident's authorization unless a
// linked visitor is still inside. Guards rely on authorization records to
// identify who is on-premises, so deletion while an entry is inside is
// refused, not deferred.
type DeleteAuthorizationUseCase struct {
	authRepo visitor.AuthorizationRepository
	recorder *auditusecases.Recorder
	logger   logger.Interface
}

func NewDeleteAuthorizationUseCase(authRepo visitor.AuthorizationRepository, recorder *auditusecases.Recorder, log logger.Interface) *DeleteAuthorizationUseCase {
	return &DeleteAuthorizationUseCase{
		authRepo: authRepo,
		recorder: recorder,
		logger:   log,
	}
}

func (uc *DeleteAuthorizationUseCase) Execute(ctx context.Context, cmd DeleteAuthorizationCommand) error {
	auth, err := uc.authRepo.GetByUUID(ctx, cmd.AuthorizationUUID)
	if err != nil {
		uc.logger.Errorw("failed to get authorization", "error", err)
		return fmt.Errorf("failed to get authorization: %w", err)
	}
	if auth == nil || auth.CondominiumID() != cmd.CondominiumID {
		return errors.NewNotFoundError(i18n.MsgAuthorizationMissing, i18n.Default(i18n.MsgAuthorizationMissing))
	}
	if auth.CreatedBy() != cmd.ResidentID {
		return errors.NewForbiddenError("authorization belongs to another resident")
	}

	// Single conditional statement: a check-in racing this delete either
	// lands before it and blocks it, or lands after on a gone authorization.
	if err := uc.authRepo.DeleteIfNoVisitorInside(ctx, auth.ID()); err != nil {
		switch {
		case stderrors.Is(err, visitor.ErrVisitorInside):
			return errors.NewForbiddenError(i18n.MsgVisitorInside, i18n.Default(i18n.MsgVisitorInside))
		case stderrors.Is(err, visitor.ErrAuthorizationGone):
			return errors.NewNotFoundError(i18n.MsgAuthorizationMissing, i18n.Default(i18n.MsgAuthorizationMissing))
		default:
			uc.logger.Errorw("failed to delete authorization", "authorization_uuid", cmd.AuthorizationUUID, "error", err)
			return fmt.Errorf("failed to delete authorization: %w", err)
		}
	}

	condoID := cmd.CondominiumID
	uc.recorder.Record(ctx, audit.EventAuthorizationGone, cmd.ActorUUID, &condoID,
		fmt.Sprintf("authorization/%s", auth.UUID()),
		fmt.Sprintf("authorization for visitor %s deleted", auth.VisitorName()),
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("authorization deleted",
		"authorization_uuid", auth.UUID(),
		"condominium_id", cmd.CondominiumID)
	return nil
}
