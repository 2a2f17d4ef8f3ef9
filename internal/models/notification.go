package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationSOS      NotificationType = "sos"
	NotificationAlert    NotificationType = "alert"
	NotificationReminder NotificationType = "reminder"
	NotificationGeneral  NotificationType = "general"
)

type Notification struct {
	ID        uuid.UUID        `db:"id"`
	UserID    uuid.UUID        `db:"user_id"`
	Title     string           `db:"title"`
	Body      string           `db:"body"`
	Type      NotificationType `db:"type"`
	IsRead    bool             `db:"is_read"`
	CreatedAt time.Time        `db:"created_at"`
}
