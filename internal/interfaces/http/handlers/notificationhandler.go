package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genturix/internal/shared/utils"

	notificationusecases "genturix/internal/application/notification/usecases"
)

type NotificationHandler struct {
	listUseCase     *notificationusecases.ListNotificationsUseCase
	markReadUseCase *notificationusecases.MarkReadUseCase
}

func NewNotificationHandler(
	listUseCase *notificationusecases.ListNotificationsUseCase,
	markReadUseCase *notificationusecases.MarkReadUseCase,
) *NotificationHandler {
	return &NotificationHandler{
		listUseCase:     listUseCase,
		markReadUseCase: markReadUseCase,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), notificationusecases.ListNotificationsCommand{
		RecipientID: currentUserID(c),
		UnreadOnly:  c.Query("unread") == "true",
		Page:        p.Page,
		PageSize:    p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"notifications": result.Notifications,
		"total":         result.Total,
		"unread":        result.Unread,
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	err := h.markReadUseCase.Execute(c.Request.Context(), notificationusecases.MarkReadCommand{
		RecipientID:      currentUserID(c),
		NotificationUUID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "notification marked read", nil)
}
