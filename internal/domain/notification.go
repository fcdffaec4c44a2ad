package domain

import "time"

// NotificationType distinguishes reminder and overdue notices.
type NotificationType string

const (
	NotificationDeadlineReminder NotificationType = "DEADLINE_REMINDER"
	NotificationDeadlineOverdue  NotificationType = "DEADLINE_OVERDUE"
)

// Notification is an in-app notice for a user. Delivery channels beyond the
// notifications table (email, WhatsApp) live outside this service.
type Notification struct {
	ID          string
	UserID      string
	Type        NotificationType
	Title       string
	Message     string
	RelatedID   string
	RelatedType string
	ReadAt      *time.Time
	CreatedAt   time.Time
}
