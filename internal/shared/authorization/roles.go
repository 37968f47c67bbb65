package authorization

// UserRole identifies one of the fixed platform roles. A user may hold more
// than one role at a time.
type UserRole string

const (
	RoleSuperAdmin UserRole = "superadmin"
	RoleAdmin      UserRole = "admin"
	RoleHR         UserRole = "hr"
	RoleGuard      UserRole = "guard"
	RoleResident   UserRole = "resident"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleHR, RoleGuard, RoleResident:
		return true
	}
	return false
}

func (r UserRole) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// RequiresSeat reports whether a user holding this role consumes a billable
// seat in the condominium's plan. SuperAdmins are platform operators and are
// not tenant-scoped.
func (r UserRole) RequiresSeat() bool {
	return r != RoleSuperAdmin
}

// RequiresCondominium reports whether the role only makes sense inside a
// tenant. SuperAdmin is the single global role.
func (r UserRole) RequiresCondominium() bool {
	return r != RoleSuperAdmin
}

func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(s)
	return role, role.IsValid()
}

// AllRoles lists every known role, used when seeding RBAC policies.
func AllRoles() []UserRole {
	return []UserRole{RoleSuperAdmin, RoleAdmin, RoleHR, RoleGuard, RoleResident}
}

// HasRole reports whether the given role set contains the role.
func HasRole(roles []UserRole, role UserRole) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAny reports whether the role set contains at least one of the wanted roles.
func HasAny(roles []UserRole, wanted ...UserRole) bool {
	for _, w := range wanted {
		if HasRole(roles, w) {
			return true
		}
	}
	return false
}
