package mappers

import (
	"encoding/json"
	"fmt"
	"strings"

	"genturix/internal/domain/user"
	"genturix/internal/infrastructure/persistence/models"
	"genturix/internal/shared/authorization"
)

// UserMapper converts between user domain objects and persistence models.
type UserMapper interface {
	ToModel(u *user.User) (*models.UserModel, error)
	ToDomain(m *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (mp *UserMapperImpl) ToModel(u *user.User) (*models.UserModel, error) {
	if u == nil {
		return nil, fmt.Errorf("user cannot be nil")
	}

	roleData, err := json.Marshal(u.RoleData())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal role data: %w", err)
	}

	roles := u.Roles()
	tags := make([]string, len(roles))
	for i, r := range roles {
		tags[i] = string(r)
	}

	return &models.UserModel{
		ID:            u.ID(),
		UUID:          u.UUID(),
		Email:         u.Email(),
		FullName:      u.FullName(),
		PasswordHash:  u.PasswordHash(),
		Roles:         strings.Join(tags, ","),
		CondominiumID: u.CondominiumID(),
		IsActive:      u.IsActive(),
		RoleData:      roleData,
		CreatedAt:     timeToMillis(u.CreatedAt()),
		UpdatedAt:     timeToMillis(u.UpdatedAt()),
	}, nil
}

func (mp *UserMapperImpl) ToDomain(m *models.UserModel) (*user.User, error) {
	if m == nil {
		return nil, fmt.Errorf("user model cannot be nil")
	}

	var roles []authorization.UserRole
	for _, tag := range strings.Split(m.Roles, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		role, ok := authorization.ParseUserRole(tag)
		if !ok {
			return nil, fmt.Errorf("unknown role in storage: %s", tag)
		}
		roles = append(roles, role)
	}

	var roleData user.RoleData
	if len(m.RoleData) > 0 {
		if err := json.Unmarshal(m.RoleData, &roleData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal role data: %w", err)
		}
	}

	return user.Reconstruct(
		m.ID,
		m.UUID,
		m.Email,
		m.FullName,
		m.PasswordHash,
		roles,
		m.CondominiumID,
		m.IsActive,
		roleData,
		millisToTime(m.CreatedAt),
		millisToTime(m.UpdatedAt),
	)
}
