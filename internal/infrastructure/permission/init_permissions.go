package permission

import (
	"fmt"
)

// SeedDefaultPolicies installs the role policy matrix. Seeding is idempotent;
// casbin ignores policies that already exist.
func (e *Enforcer) SeedDefaultPolicies() error {
	policies := [][]string{
		// SuperAdmin operates the platform: tenants, pricing, billing runs,
		// and cross-tenant audit export.
		{"superadmin", "condominium", "create"},
		{"superadmin", "condominium", "read"},
		{"superadmin", "condominium", "update"},
		{"superadmin", "module", "toggle"},
		{"superadmin", "pricing", "read"},
		{"superadmin", "pricing", "update"},
		{"superadmin", "billing", "read"},
		{"superadmin", "billing", "confirm"},
		{"superadmin", "billing", "run"},
		{"superadmin", "seat_upgrade", "decide"},
		{"superadmin", "seat_upgrade", "read"},
		{"superadmin", "user", "create"},
		{"superadmin", "user", "read"},
		{"superadmin", "user", "update"},
		{"superadmin", "audit", "export"},
		{"superadmin", "panic", "create"},

		// Admin manages one condominium.
		{"admin", "user", "create"},
		{"admin", "user", "read"},
		{"admin", "user", "update"},
		{"admin", "panic", "create"},
		{"admin", "billing", "read"},
		{"admin", "seat_upgrade", "create"},
		{"admin", "seat_upgrade", "read"},
		{"admin", "shift", "create"},
		{"admin", "shift", "cancel"},
		{"admin", "shift", "read"},
		{"admin", "panic", "read"},
		{"admin", "panic", "resolve"},
		{"admin", "absence", "decide"},
		{"admin", "absence", "read"},
		{"admin", "visitor_entry", "read"},
		{"admin", "audit", "export"},

		// HR handles staff workflows.
		{"hr", "attendance", "create"},
		{"hr", "attendance", "read"},
		{"hr", "absence", "create"},
		{"hr", "absence", "decide"},
		{"hr", "absence", "read"},
		{"hr", "shift", "read"},
		{"hr", "panic", "create"},

		// Guard works the gate.
		{"guard", "visitor_entry", "create"},
		{"guard", "visitor_entry", "update"},
		{"guard", "visitor_entry", "read"},
		{"guard", "shift", "read"},
		{"guard", "panic", "create"},
		{"guard", "panic", "read"},
		{"guard", "attendance", "create"},
		{"guard", "notification", "read"},
		{"guard", "notification", "update"},

		// Resident pre-authorizes visitors and can trigger a panic alert.
		{"resident", "authorization", "create"},
		{"resident", "authorization", "read"},
		{"resident", "authorization", "delete"},
		{"resident", "panic", "create"},
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, policy := range policies {
		if _, err := e.enforcer.AddPolicy(policy); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save policies: %w", err)
	}

	e.logger.Info("default role policies seeded")
	return nil
}
