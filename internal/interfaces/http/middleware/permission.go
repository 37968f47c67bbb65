package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genturix/internal/infrastructure/permission"
	"genturix/internal/shared/authorization"
	"genturix/internal/shared/constants"
	"genturix/internal/shared/logger"
	"genturix/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, log logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   log,
	}
}

// RequirePermission checks the policy store for any of the user's roles.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := ContextRoles(c)
		if roles == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.EnforceAny(roles, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}
		if !allowed {
			m.logger.Warnw("permission denied", "roles", roles, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole allows the request when the user holds at least one of the
// listed roles.
func (m *PermissionMiddleware) RequireRole(roles ...authorization.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		held := ContextRoles(c)
		if held == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		for _, want := range roles {
			if authorization.HasRole(held, want) {
				c.Next()
				return
			}
		}

		m.logger.Warnw("role check failed", "held", held, "required", roles)
		utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}

// ContextRoles returns the authenticated user's roles, or nil when the auth
// middleware did not run.
func ContextRoles(c *gin.Context) []authorization.UserRole {
	v, exists := c.Get(constants.ContextKeyUserRoles)
	if !exists {
		return nil
	}
	roles, ok := v.([]authorization.UserRole)
	if !ok {
		return nil
	}
	return roles
}
