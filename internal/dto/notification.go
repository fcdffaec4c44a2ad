package dto

import "time"

type NotificationResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	RelatedID   string     `json:"relatedId"`
	RelatedType string     `json:"relatedType"`
	ReadAt      *time.Time `json:"readAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type ListNotificationsResponse struct {
	Items []NotificationResponse `json:"items"`
}
