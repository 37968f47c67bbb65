package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"genturix/internal/shared/utils"

	userusecases "genturix/internal/application/user/usecases"
)

type UserHandler struct {
	createUseCase     *userusecases.CreateUserUseCase
	listUseCase       *userusecases.ListUsersUseCase
	deactivateUseCase *userusecases.DeactivateUserUseCase
}

func NewUserHandler(
	createUseCase *userusecases.CreateUserUseCase,
	listUseCase *userusecases.ListUsersUseCase,
	deactivateUseCase *userusecases.DeactivateUserUseCase,
) *UserHandler {
	return &UserHandler{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		deactivateUseCase: deactivateUseCase,
	}
}

type createUserRequest struct {
	Email           string   `json:"email" binding:"required,email"`
	FullName        string   `json:"full_name" binding:"required"`
	Password        string   `json:"password" binding:"required"`
	Roles           []string `json:"roles" binding:"required,min=1"`
	CondominiumID   *uint    `json:"condominium_id"`
	ApartmentNumber string   `json:"apartment_number"`
	TowerBlock      string   `json:"tower_block"`
	ResidentType    string   `json:"resident_type"`
	BadgeNumber     string   `json:"badge_number"`
	Department      string   `json:"department"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	// Admins always create inside their own tenant; only SuperAdmins may
	// pick one.
	condoID := req.CondominiumID
	if tenant := currentCondominiumID(c); tenant != nil {
		condoID = tenant
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), userusecases.CreateUserCommand{
		Email:           req.Email,
		FullName:        req.FullName,
		Password:        req.Password,
		Roles:           req.Roles,
		CondominiumID:   condoID,
		ApartmentNumber: req.ApartmentNumber,
		TowerBlock:      req.TowerBlock,
		ResidentType:    req.ResidentType,
		BadgeNumber:     req.BadgeNumber,
		Department:      req.Department,
		ActorUUID:       currentUserUUID(c),
		IPAddress:       c.ClientIP(),
		UserAgent:       c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":    result.UserUUID,
		"email": result.Email,
	}, "user created")
}

func (h *UserHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	condoID := currentCondominiumID(c)
	if condoID == nil {
		if raw := c.Query("condominium_id"); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				v := uint(id)
				condoID = &v
			}
		}
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), userusecases.ListUsersCommand{
		Page:          p.Page,
		PageSize:      p.PageSize,
		CondominiumID: condoID,
		Role:          c.Query("role"),
		Email:         c.Query("email"),
		ActiveOnly:    c.Query("active") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, p.Page, p.PageSize)
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	err := h.deactivateUseCase.Execute(c.Request.Context(), userusecases.DeactivateUserCommand{
		UserUUID:           c.Param("id"),
		ActorCondominiumID: currentCondominiumID(c),
		ActorUUID:          currentUserUUID(c),
		IPAddress:          c.ClientIP(),
		UserAgent:          c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user deactivated", nil)
}
