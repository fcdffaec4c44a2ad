package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dom "github.com/dannykpan999-web/ministerial-command-center-sub002/internal/domain"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/dto"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestNotificationList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := repo.NewMemNotificationRepo()
	_, err := store.Create(context.Background(), dom.Notification{
		ID: "n1", UserID: "user-1", Type: dom.NotificationDeadlineReminder,
		Title: "[HIGH] Deadline approaching", RelatedID: "d1", RelatedType: "deadline",
	})
	require.NoError(t, err)
	_, err = store.Create(context.Background(), dom.Notification{
		ID: "n2", UserID: "user-2", Type: dom.NotificationDeadlineOverdue,
	})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/api/v1/notifications", NewNotificationHandler(store).List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/notifications?userId=user-1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListNotificationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	require.Equal(t, "n1", resp.Items[0].ID)
	require.Equal(t, "DEADLINE_REMINDER", resp.Items[0].Type)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}
