package usecases

import (
	"context"
	"fmt"
	"time"

	"genturix/internal/domain/visitor"
	"genturix/internal/shared/logger"
)

type ListMyAuthorizationsCommand struct {
	ResidentID uint
	Page       int
	PageSize   int
}

type ListMyAuthorizationsResult struct {
	Authorizations []AuthorizationView
	Total          int64
}

// ListMyAuthorizationsUseCase returns the authorizations a resident created,
// with validity and inside-presence computed at read time.
type ListMyAuthorizationsUseCase struct {
	authRepo visitor.AuthorizationRepository
	logger   logger.Interface
}

func NewListMyAuthorizationsUseCase(authRepo visitor.AuthorizationRepository, log logger.Interface) *ListMyAuthorizationsUseCase {
	return &ListMyAuthorizationsUseCase{authRepo: authRepo, logger: log}
}

func (uc *ListMyAuthorizationsUseCase) Execute(ctx context.Context, cmd ListMyAuthorizationsCommand) (*ListMyAuthorizationsResult, error) {
	auths, total, err := uc.authRepo.ListByCreator(ctx, cmd.ResidentID, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list authorizations", "error", err)
		return nil, fmt.Errorf("failed to list authorizations: %w", err)
	}

	now := time.Now()
	views := make([]AuthorizationView, 0, len(auths))
	for _, a := range auths {
		inside, err := uc.authRepo.HasVisitorInside(ctx, a.ID())
		if err != nil {
			uc.logger.Errorw("failed to check inside visitors", "authorization_uuid", a.UUID(), "error", err)
			return nil, fmt.Errorf("failed to check inside visitors: %w", err)
		}
		views = append(views, toAuthorizationView(a, now, inside))
	}

	return &ListMyAuthorizationsResult{Authorizations: views, Total: total}, nil
}
