package usecases

import (
	"context"
	"fmt"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/condominium"
	"genturix/internal/domain/user"
	"genturix/internal/infrastructure/email"
	"genturix/internal/shared/authorization"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/i18n"
	"genturix/internal/shared/logger"
	"genturix/internal/shared/utils"

	auditusecases "genturix/internal/application/audit/usecases"
)

// PasswordHasher hashes new passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type CreateUserCommand struct {
	Email           string
	FullName        string
	Password        string
	Roles           []string
	CondominiumID   *uint
	ApartmentNumber string
	TowerBlock      string
	ResidentType    string
	BadgeNumber     string
	Department      string

	ActorUUID string
	IPAddress string
	UserAgent string
}

type CreateUserResult struct {
	UserID   uint
	UserUUID string
	Email    string
}

// CreateUserUseCase provisions a user inside a tenant. Seat-occupying roles
// are refused once the tenant's seat allowance is full.
type CreateUserUseCase struct {
	userRepo  user.Repository
	condoRepo condominium.Repository
	hasher    PasswordHasher
	mailer    email.Service
	recorder  *auditusecases.Recorder
	logger    logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	condoRepo condominium.Repository,
	hasher PasswordHasher,
	mailer email.Service,
	recorder *auditusecases.Recorder,
	log logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:  userRepo,
		condoRepo: condoRepo,
		hasher:    hasher,
		mailer:    mailer,
		recorder:  recorder,
		logger:    log,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	roles := make([]authorization.UserRole, 0, len(cmd.Roles))
	occupiesSeat := false
	for _, tag := range cmd.Roles {
		role, ok := authorization.ParseUserRole(tag)
		if !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid role: %s", tag))
		}
		roles = append(roles, role)
		if role.RequiresSeat() {
			occupiesSeat = true
		}
	}
	if len(roles) == 0 {
		return nil, errors.NewValidationError("at least one role is required")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	var condoName string
	if cmd.CondominiumID != nil {
		condo, err := uc.condoRepo.GetByID(ctx, *cmd.CondominiumID)
		if err != nil {
			uc.logger.Errorw("failed to get condominium", "error", err)
			return nil, fmt.Errorf("failed to get condominium: %w", err)
		}
		if condo == nil {
			return nil, errors.NewNotFoundError("condominium not found")
		}
		condoName = condo.Name()

		if occupiesSeat {
			used, err := uc.condoRepo.CountActiveSeatUsers(ctx, condo.ID())
			if err != nil {
				uc.logger.Errorw("failed to count seat users", "error", err)
				return nil, fmt.Errorf("failed to count seat users: %w", err)
			}
			if used >= int64(condo.SeatCount()) {
				return nil, errors.NewConflictError("seat limit reached",
					fmt.Sprintf("el condominio usa %d de %d asientos", used, condo.SeatCount()))
			}
		}
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(cmd.Email, cmd.FullName, hash, roles, cmd.CondominiumID, user.RoleData{
		ApartmentNumber: cmd.ApartmentNumber,
		TowerBlock:      cmd.TowerBlock,
		ResidentType:    cmd.ResidentType,
		BadgeNumber:     cmd.BadgeNumber,
		Department:      cmd.Department,
	})
	if err != nil {
		return nil, uc.mapDomainError(err)
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if err == user.ErrDuplicateEmail {
			return nil, errors.NewConflictError(i18n.MsgDuplicateEmail, i18n.Default(i18n.MsgDuplicateEmail))
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Welcome mail is best effort.
	if err := uc.mailer.SendWelcomeEmail(newUser.Email(), newUser.FullName(), condoName); err != nil {
		uc.logger.Warnw("failed to send welcome email", "error", err, "email", utils.MaskEmail(newUser.Email()))
	}

	uc.recorder.Record(ctx, audit.EventUserCreated, cmd.ActorUUID, cmd.CondominiumID,
		fmt.Sprintf("user/%s", newUser.UUID()), fmt.Sprintf("created user %s", utils.MaskEmail(newUser.Email())),
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("user created", "user_uuid", newUser.UUID(), "roles", cmd.Roles)

	return &CreateUserResult{
		UserID:   newUser.ID(),
		UserUUID: newUser.UUID(),
		Email:    newUser.Email(),
	}, nil
}

func (uc *CreateUserUseCase) mapDomainError(err error) error {
	switch err {
	case user.ErrApartmentRequired:
		return errors.NewValidationError(i18n.MsgApartmentRequired, i18n.Default(i18n.MsgApartmentRequired))
	case user.ErrBadgeRequired:
		return errors.NewValidationError(i18n.MsgBadgeRequired, i18n.Default(i18n.MsgBadgeRequired))
	default:
		return errors.NewValidationError(err.Error())
	}
}
