package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genturix/internal/shared/utils"

	authusecases "genturix/internal/application/auth/usecases"
)

type AuthHandler struct {
	loginUseCase   *authusecases.LoginUseCase
	refreshUseCase *authusecases.RefreshTokenUseCase
}

func NewAuthHandler(loginUseCase *authusecases.LoginUseCase, refreshUseCase *authusecases.RefreshTokenUseCase) *AuthHandler {
	return &AuthHandler{
		loginUseCase:   loginUseCase,
		refreshUseCase: refreshUseCase,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userPayload struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	FullName      string   `json:"full_name"`
	Roles         []string `json:"roles"`
	CondominiumID *uint    `json:"condominium_id,omitempty"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), authusecases.LoginCommand{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	roles := result.User.Roles()
	roleTags := make([]string, 0, len(roles))
	for _, r := range roles {
		roleTags = append(roleTags, r.String())
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"expires_in":    result.ExpiresIn,
		"user": userPayload{
			ID:            result.User.UUID(),
			Email:         result.User.Email(),
			FullName:      result.User.FullName(),
			Roles:         roleTags,
			CondominiumID: result.User.CondominiumID(),
		},
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.refreshUseCase.Execute(c.Request.Context(), authusecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"expires_in":    result.ExpiresIn,
	})
}
