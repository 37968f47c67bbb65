package usecases

import (
	"context"
	"fmt"
	"time"

	"genturix/internal/domain/user"
	"genturix/internal/shared/logger"
)

type ListUsersCommand struct {
	Page          int
	PageSize      int
	CondominiumID *uint
	Role          string
	Email         string
	ActiveOnly    bool
}

type UserSummary struct {
	UUID            string    `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	Roles           []string  `json:"roles"`
	IsActive        bool      `json:"is_active"`
	ApartmentNumber string    `json:"apartment_number,omitempty"`
	BadgeNumber     string    `json:"badge_number,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ListUsersResult struct {
	Users []UserSummary
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, log logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   log,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error) {
	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Page:          cmd.Page,
		PageSize:      cmd.PageSize,
		CondominiumID: cmd.CondominiumID,
		Role:          cmd.Role,
		Email:         cmd.Email,
		ActiveOnly:    cmd.ActiveOnly,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		roles := u.Roles()
		tags := make([]string, len(roles))
		for i, r := range roles {
			tags[i] = string(r)
		}
		summaries = append(summaries, UserSummary{
			UUID:            u.UUID(),
			Email:           u.Email(),
			FullName:        u.FullName(),
			Roles:           tags,
			IsActive:        u.IsActive(),
			ApartmentNumber: u.RoleData().ApartmentNumber,
			BadgeNumber:     u.RoleData().BadgeNumber,
			CreatedAt:       u.CreatedAt(),
		})
	}

	return &ListUsersResult{Users: summaries, Total: total}, nil
}
