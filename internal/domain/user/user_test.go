package user

import (
	"errors"
	"testing"

	"genturix/internal/shared/authorization"
)

func TestNewUser_RolePayloadRules(t *testing.T) {
	condoID := uint(1)

	tests := []struct {
		name     string
		roles    []authorization.UserRole
		roleData RoleData
		wantErr  error
	}{
		{
			name:    "resident without apartment",
			roles:   []authorization.UserRole{authorization.RoleResident},
			wantErr: ErrApartmentRequired,
		},
		{
			name:     "resident with apartment",
			roles:    []authorization.UserRole{authorization.RoleResident},
			roleData: RoleData{ApartmentNumber: "4B"},
		},
		{
			name:    "guard without badge",
			roles:   []authorization.UserRole{authorization.RoleGuard},
			wantErr: ErrBadgeRequired,
		},
		{
			name:     "guard with badge",
			roles:    []authorization.UserRole{authorization.RoleGuard},
			roleData: RoleData{BadgeNumber: "G-100"},
		},
		{
			name:  "admin needs no payload",
			roles: []authorization.UserRole{authorization.RoleAdmin},
		},
		{
			name:     "resident and guard need both",
			roles:    []authorization.UserRole{authorization.RoleResident, authorization.RoleGuard},
			roleData: RoleData{ApartmentNumber: "4B"},
			wantErr:  ErrBadgeRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser("ana@example.com", "Ana Torres", "$2a$12$hash", tt.roles, &condoID, tt.roleData)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewUser() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("NewUser() unexpected error: %v", err)
			}
		})
	}
}

func TestNewUser_TenantRequiredForTenantRoles(t *testing.T) {
	_, err := NewUser("ana@example.com", "Ana Torres", "$2a$12$hash",
		[]authorization.UserRole{authorization.RoleAdmin}, nil, RoleData{})
	if !errors.Is(err, ErrCondominiumRequired) {
		t.Errorf("NewUser() error = %v, want %v", err, ErrCondominiumRequired)
	}

	u, err := NewUser("root@example.com", "Root", "$2a$12$hash",
		[]authorization.UserRole{authorization.RoleSuperAdmin}, nil, RoleData{})
	if err != nil {
		t.Fatalf("NewUser() unexpected error: %v", err)
	}
	if u.CondominiumID() != nil {
		t.Error("superadmin must not carry a condominium")
	}
}

func TestNewUser_EmailIsNormalized(t *testing.T) {
	condoID := uint(1)

	u, err := NewUser("  Ana@Example.com ", "Ana Torres", "$2a$12$hash",
		[]authorization.UserRole{authorization.RoleHR}, &condoID, RoleData{})
	if err != nil {
		t.Fatalf("NewUser() unexpected error: %v", err)
	}
	if u.Email() != "ana@example.com" {
		t.Errorf("email = %q, want trimmed lowercase form", u.Email())
	}

	if _, err := NewUser("not-an-email", "Ana Torres", "$2a$12$hash",
		[]authorization.UserRole{authorization.RoleHR}, &condoID, RoleData{}); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("NewUser() error = %v, want %v", err, ErrInvalidEmail)
	}
}
