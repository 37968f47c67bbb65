package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/user"
	"genturix/internal/infrastructure/auth"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/i18n"
	"genturix/internal/shared/logger"
)

// RefreshVerifier validates refresh tokens.
type RefreshVerifier interface {
	VerifyRefresh(tokenString string) (*auth.Claims, error)
}

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RefreshTokenUseCase issues a fresh token pair from a valid refresh token.
// Roles are re-read from storage so a role change takes effect on the next
// refresh, not at the eventual token expiry.
type RefreshTokenUseCase struct {
	userRepo user.Repository
	verifier RefreshVerifier
	tokens   TokenService
	logger   logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	verifier RefreshVerifier,
	tokens TokenService,
	log logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
		logger:   log,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	claims, err := uc.verifier.VerifyRefresh(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError(i18n.MsgInvalidCredentials, i18n.Default(i18n.MsgInvalidCredentials))
	}

	existing, err := uc.userRepo.GetByUUID(ctx, claims.UserUUID)
	if err != nil {
		uc.logger.Errorw("failed to get user for refresh", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil || !existing.IsActive() {
		return nil, errors.NewUnauthorizedError(i18n.MsgInvalidCredentials, i18n.Default(i18n.MsgInvalidCredentials))
	}

	pair, err := uc.tokens.Generate(existing.UUID(), existing.Roles(), existing.CondominiumID())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RefreshTokenResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
