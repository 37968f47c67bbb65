package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genturix/internal/domain/condominium"
	"genturix/internal/shared/constants"
	"genturix/internal/shared/i18n"
	"genturix/internal/shared/logger"
	"genturix/internal/shared/utils"
)

// ModuleGate enforces per-tenant feature flags at the request layer. Routes
// carrying a life-safety exemption, the panic trigger, simply do not mount
// this middleware; the exemption is visible in the route table instead of
// being a special case hidden in here.
type ModuleGate struct {
	condoRepo condominium.Repository
	logger    logger.Interface
}

func NewModuleGate(condoRepo condominium.Repository, log logger.Interface) *ModuleGate {
	return &ModuleGate{
		condoRepo: condoRepo,
		logger:    log,
	}
}

// Require rejects the request when the tenant has the module disabled.
// SuperAdmins carry no tenant and pass through.
func (g *ModuleGate) Require(module condominium.ModuleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(constants.ContextKeyCondominiumID)
		if !exists {
			c.Next()
			return
		}
		condoID, ok := v.(uint)
		if !ok {
			utils.ErrorResponse(c, http.StatusInternalServerError, "invalid tenant context")
			c.Abort()
			return
		}

		condo, err := g.condoRepo.GetByID(c.Request.Context(), condoID)
		if err != nil {
			g.logger.Errorw("failed to load condominium for module gate", "error", err, "condominium_id", condoID)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to resolve tenant")
			c.Abort()
			return
		}
		if condo == nil {
			utils.ErrorResponse(c, http.StatusForbidden, i18n.Default(i18n.MsgModuleDisabled))
			c.Abort()
			return
		}

		if !condo.IsModuleEnabled(module) {
			g.logger.Debugw("module gate rejected request",
				"condominium_id", condoID,
				"module", module,
				"path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusForbidden, i18n.Default(i18n.MsgModuleDisabled))
			c.Abort()
			return
		}

		c.Next()
	}
}
