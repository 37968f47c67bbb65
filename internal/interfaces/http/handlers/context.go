// Package handlers contains the Gin HTTP handlers. Handlers translate
// requests into use case commands and never touch repositories directly.
package handlers

import (
	"github.com/gin-gonic/gin"

	"genturix/internal/shared/authorization"
	"genturix/internal/shared/constants"
)

func currentUserID(c *gin.Context) uint {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0
	}
	id, _ := v.(uint)
	return id
}

func currentUserUUID(c *gin.Context) string {
	v, exists := c.Get(constants.ContextKeyUserUUID)
	if !exists {
		return ""
	}
	uid, _ := v.(string)
	return uid
}

func currentRoles(c *gin.Context) []authorization.UserRole {
	v, exists := c.Get(constants.ContextKeyUserRoles)
	if !exists {
		return nil
	}
	roles, _ := v.([]authorization.UserRole)
	return roles
}

// currentCondominiumID returns the requester's tenant id, nil for
// SuperAdmins.
func currentCondominiumID(c *gin.Context) *uint {
	v, exists := c.Get(constants.ContextKeyCondominiumID)
	if !exists {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}

// requireTenant returns the requester's tenant id, zero when the requester
// carries none.
func requireTenant(c *gin.Context) uint {
	if id := currentCondominiumID(c); id != nil {
		return *id
	}
	return 0
}
