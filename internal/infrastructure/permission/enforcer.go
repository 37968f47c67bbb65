package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"genturix/internal/shared/authorization"
	"genturix/internal/shared/logger"
)

// Enforcer wraps casbin with role-based policies. Subjects are role tags, so
// a user is allowed when any of their roles is.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, modelPath string, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(modelPath, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// EnforceAny reports whether any of the roles may perform action on resource.
func (e *Enforcer) EnforceAny(roles []authorization.UserRole, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, role := range roles {
		allowed, err := e.enforcer.Enforce(string(role), resource, action)
		if err != nil {
			e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
			return false, fmt.Errorf("permission check failed: %w", err)
		}
		if allowed {
			return true, nil
		}
	}
	return false, nil
}

func (e *Enforcer) AddPolicy(role, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, resource, action); err != nil {
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return e.enforcer.SavePolicy()
}
