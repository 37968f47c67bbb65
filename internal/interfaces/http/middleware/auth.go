package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"genturix/internal/domain/user"
	"genturix/internal/infrastructure/auth"
	"genturix/internal/shared/constants"
	"genturix/internal/shared/logger"
	"genturix/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     log,
	}
}

// RequireAuth verifies the bearer token and loads the current user into the
// request context. Roles come from storage, not from the token, so role
// changes take effect without waiting for token expiry.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.VerifyAccess(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		u, err := m.userRepo.GetByUUID(c.Request.Context(), claims.UserUUID)
		if err != nil {
			m.logger.Errorw("failed to load user for token", "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to resolve user")
			c.Abort()
			return
		}
		if u == nil || !u.IsActive() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "account is not active")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, u.ID())
		c.Set(constants.ContextKeyUserUUID, u.UUID())
		c.Set(constants.ContextKeyUserRoles, u.Roles())
		if condoID := u.CondominiumID(); condoID != nil {
			c.Set(constants.ContextKeyCondominiumID, *condoID)
		}
		if lang := c.GetHeader("Accept-Language"); lang != "" {
			c.Set(constants.ContextKeyLanguage, lang)
		}

		c.Next()
	}
}
