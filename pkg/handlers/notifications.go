package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ahasanshaker/forum-server/pkg/notifications"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	Repo   NotificationsRepo
	Logger *zap.SugaredLogger
}

type NotificationsRepo interface {
	GetByUser(ctx context.Context, email string) ([]*notifications.Notification, error)
	MarkAllRead(ctx context.Context, email string) error
}

type NotificationsResponse struct {
	Notifications []*notifications.Notification `json:"notifications"`
	UnreadCount   int                           `json:"unreadCount"`
}

func (h *NotificationHandler) GetForUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	result, err := h.Repo.GetByUser(ctx, email)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if result == nil {
		result = []*notifications.Notification{}
	}

	unread := 0
	for _, n := range result {
		if !n.Read {
			unread++
		}
	}

	WriteJSON(w, &NotificationsResponse{Notifications: result, UnreadCount: unread}, http.StatusOK)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := h.Repo.MarkAllRead(ctx, email)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteResponse(w, "Notifications marked as read", http.StatusOK)
}
