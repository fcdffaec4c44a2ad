package handlers

import (
	"net/http"

	dom "github.com/dannykpan999-web/ministerial-command-center-sub002/internal/domain"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/dto"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/repo"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	repo repo.NotificationRepo
}

func NewNotificationHandler(r repo.NotificationRepo) *NotificationHandler {
	return &NotificationHandler{repo: r}
}

// List godoc
// @Summary      List notifications for a user
// @Tags         notifications
// @Produce      json
// @Param        userId  query     string  true  "User ID"
// @Success      200     {object}  dto.ListNotificationsResponse
// @Failure      400     {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	list, err := h.repo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListNotificationsResponse{Items: notificationsToResponses(list)})
}

func notificationsToResponses(list []dom.Notification) []dto.NotificationResponse {
	out := make([]dto.NotificationResponse, len(list))
	for i, n := range list {
		out[i] = dto.NotificationResponse{
			ID:          n.ID,
			UserID:      n.UserID,
			Type:        string(n.Type),
			Title:       n.Title,
			Message:     n.Message,
			RelatedID:   n.RelatedID,
			RelatedType: n.RelatedType,
			ReadAt:      n.ReadAt,
			CreatedAt:   n.CreatedAt,
		}
	}
	return out
}
