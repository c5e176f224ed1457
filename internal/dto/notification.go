package dto

import (
	"time"

	"github.com/eventlite/eventlite-api/internal/models"
	"github.com/eventlite/eventlite-api/internal/services"
)

// NotificationDTO represents a notification in API responses
type NotificationDTO struct {
	ID        uint64    `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// CountsDTO carries the navbar counters
type CountsDTO struct {
	UnreadNotificationsCount int64 `json:"unread_notifications_count"`
	MyBookmarksCount         int64 `json:"my_bookmarks_count"`
}

// ToNotificationDTO converts a Notification model to NotificationDTO
func ToNotificationDTO(notification models.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        notification.ID,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

// ToCountsDTO converts service counts to CountsDTO
func ToCountsDTO(counts services.Counts) CountsDTO {
	return CountsDTO{
		UnreadNotificationsCount: counts.UnreadNotifications,
		MyBookmarksCount:         counts.Bookmarks,
	}
}
