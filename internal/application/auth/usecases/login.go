package usecases

import (
	"context"
	"fmt"
	"strings"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/user"
	"genturix/internal/infrastructure/ratelimit"
	"genturix/internal/shared/authorization"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/i18n"
	"genturix/internal/shared/logger"
	"genturix/internal/shared/utils"

	auditusecases "genturix/internal/application/audit/usecases"
)

// PasswordHasher verifies stored password hashes.
type PasswordHasher interface {
	Verify(password, hash string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService issues signed token pairs.
type TokenService interface {
	Generate(userUUID string, roles []authorization.UserRole, condominiumID *uint) (*TokenPair, error)
}

type LoginCommand struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	limiter  ratelimit.LoginLimiter
	recorder *auditusecases.Recorder
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	limiter ratelimit.LoginLimiter,
	recorder *auditusecases.Recorder,
	log logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		limiter:  limiter,
		recorder: recorder,
		logger:   log,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	// The limit applies per (email, IP) pair and counts failures only: one
	// address hammering one account gets throttled without locking the
	// account out globally, and valid logins never consume the window.
	allowed, err := uc.limiter.Allow(ctx, email, cmd.IPAddress)
	if err != nil {
		uc.logger.Errorw("login rate limiter error", "error", err)
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}
	if !allowed {
		uc.logger.Warnw("login rate limit exceeded", "email", utils.MaskEmail(email), "ip", cmd.IPAddress)
		return nil, errors.NewRateLimitedError(i18n.MsgTooManyAttempts, i18n.Default(i18n.MsgTooManyAttempts))
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// The same generic error covers unknown email, inactive account, and a
	// wrong password, so responses do not reveal which emails exist.
	if existing == nil || !existing.IsActive() {
		uc.recordFailure(ctx, cmd, email)
		return nil, errors.NewUnauthorizedError(i18n.MsgInvalidCredentials, i18n.Default(i18n.MsgInvalidCredentials))
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.recordFailure(ctx, cmd, email)
		return nil, errors.NewUnauthorizedError(i18n.MsgInvalidCredentials, i18n.Default(i18n.MsgInvalidCredentials))
	}

	pair, err := uc.tokens.Generate(existing.UUID(), existing.Roles(), existing.CondominiumID())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.recorder.Record(ctx, audit.EventLogin, existing.UUID(), existing.CondominiumID(),
		"auth", "successful login", cmd.IPAddress, cmd.UserAgent)
	uc.logger.Infow("user logged in", "user_uuid", existing.UUID())

	return &LoginResult{
		User:         existing,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (uc *LoginUseCase) recordFailure(ctx context.Context, cmd LoginCommand, email string) {
	uc.limiter.RecordFailure(ctx, email, cmd.IPAddress)
	uc.recorder.Record(ctx, audit.EventLoginFailed, "", nil,
		"auth", fmt.Sprintf("failed login for %s", utils.MaskEmail(email)), cmd.IPAddress, cmd.UserAgent)
}
