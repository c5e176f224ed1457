package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/eventlite/eventlite-api/internal/dto"
	apierrors "github.com/eventlite/eventlite-api/internal/errors"
	"github.com/eventlite/eventlite-api/internal/middleware"
	"github.com/eventlite/eventlite-api/internal/services"
	"github.com/gin-gonic/gin"
)

// NotificationHandler coordinates the notification read-side endpoints.
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GetCounts returns the navbar counters for the current user.
func (h *NotificationHandler) GetCounts(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	counts, err := h.notificationService.GetCounts(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch counts")
		return
	}

	c.JSON(http.StatusOK, dto.ToCountsDTO(*counts))
}

// ListNotifications returns the current user's notifications, newest first.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	notifications, err := h.notificationService.ListNotifications(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch notifications")
		return
	}

	notificationDTOs := make([]dto.NotificationDTO, len(notifications))
	for i, notification := range notifications {
		notificationDTOs[i] = dto.ToNotificationDTO(notification)
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notificationDTOs})
}

// MarkRead marks one of the current user's notifications as read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid notification ID")
		return
	}

	if err := h.notificationService.MarkRead(notificationID, userID); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			apierrors.NotFound(c, "Notification not found")
			return
		}
		apierrors.InternalError(c, "Failed to mark notification read")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification marked as read",
	})
}

// MarkAllRead marks all of the current user's notifications as read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		apierrors.InternalError(c, "Failed to mark notifications read")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All notifications marked as read",
	})
}
