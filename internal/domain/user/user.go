package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"genturix/internal/shared/authorization"
)

// RoleData carries the role-specific payload attached to a user. Which fields
// are required depends on the roles held; see validateRoleData.
type RoleData struct {
	ApartmentNumber string `json:"apartment_number,omitempty"`
	TowerBlock      string `json:"tower_block,omitempty"`
	ResidentType    string `json:"resident_type,omitempty"`
	BadgeNumber     string `json:"badge_number,omitempty"`
	Department      string `json:"department,omitempty"`
}

// User is the directory aggregate. Email is globally unique across tenants;
// condominiumID is nil only for SuperAdmins.
type User struct {
	id            uint
	uuid          string
	email         string
	fullName      string
	passwordHash  string
	roles         []authorization.UserRole
	condominiumID *uint
	isActive      bool
	roleData      RoleData
	createdAt     time.Time
	updatedAt     time.Time
}

// NewUser creates a user, enforcing the role payload rules at creation time:
// a Resident requires an apartment number and a Guard requires a badge number.
func NewUser(
	email string,
	fullName string,
	passwordHash string,
	roles []authorization.UserRole,
	condominiumID *uint,
	roleData RoleData,
) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if len(roles) == 0 {
		return nil, fmt.Errorf("at least one role is required")
	}
	for _, r := range roles {
		if !r.IsValid() {
			return nil, fmt.Errorf("invalid role: %s", r)
		}
		if r.RequiresCondominium() && condominiumID == nil {
			return nil, ErrCondominiumRequired
		}
	}
	if err := validateRoleData(roles, roleData); err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		uuid:          uuid.NewString(),
		email:         email,
		fullName:      fullName,
		passwordHash:  passwordHash,
		roles:         roles,
		condominiumID: condominiumID,
		isActive:      true,
		roleData:      roleData,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func validateRoleData(roles []authorization.UserRole, data RoleData) error {
	if authorization.HasRole(roles, authorization.RoleResident) && data.ApartmentNumber == "" {
		return ErrApartmentRequired
	}
	if authorization.HasRole(roles, authorization.RoleGuard) && data.BadgeNumber == "" {
		return ErrBadgeRequired
	}
	return nil
}

// Reconstruct rebuilds a user from persistence.
func Reconstruct(
	id uint,
	uid string,
	email string,
	fullName string,
	passwordHash string,
	roles []authorization.UserRole,
	condominiumID *uint,
	isActive bool,
	roleData RoleData,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, ErrInvalidEmail
	}
	return &User{
		id:            id,
		uuid:          uid,
		email:         email,
		fullName:      fullName,
		passwordHash:  passwordHash,
		roles:         roles,
		condominiumID: condominiumID,
		isActive:      isActive,
		roleData:      roleData,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) UUID() string         { return u.uuid }
func (u *User) Email() string        { return u.email }
func (u *User) FullName() string     { return u.fullName }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) RoleData() RoleData   { return u.roleData }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) Roles() []authorization.UserRole {
	out := make([]authorization.UserRole, len(u.roles))
	copy(out, u.roles)
	return out
}

// CondominiumID returns the tenant id, nil for SuperAdmins.
func (u *User) CondominiumID() *uint {
	if u.condominiumID == nil {
		return nil
	}
	v := *u.condominiumID
	return &v
}

func (u *User) HasRole(role authorization.UserRole) bool {
	return authorization.HasRole(u.roles, role)
}

// OccupiesSeat reports whether this user counts against the tenant's seats.
func (u *User) OccupiesSeat() bool {
	if !u.isActive {
		return false
	}
	for _, r := range u.roles {
		if r.RequiresSeat() {
			return true
		}
	}
	return false
}

// Deactivate marks the user inactive, freeing its seat.
func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}

// Activate re-enables a previously deactivated user.
func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = time.Now()
}

// SetID assigns the persistence-generated id after the first save.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
