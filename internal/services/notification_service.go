package services

import (
	"errors"
	"fmt"

	"github.com/eventlite/eventlite-api/internal/models"
	"github.com/eventlite/eventlite-api/internal/repository"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService handles the read side of notifications and the navbar
// counters.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	interactionRepo  repository.InteractionRepository
	userRepo         repository.UserRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	interactionRepo repository.InteractionRepository,
	userRepo repository.UserRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		interactionRepo:  interactionRepo,
		userRepo:         userRepo,
	}
}

// Counts holds the navbar counters for the current user.
type Counts struct {
	UnreadNotifications int64
	Bookmarks           int64
}

// GetCounts derives the counters fresh from the store on every call: unread
// notifications for everyone, bookmark count for attendees only.
func (s *NotificationService) GetCounts(userID uint64) (*Counts, error) {
	unread, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	counts := &Counts{UnreadNotifications: unread}

	profile, err := s.userRepo.FindProfile(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if err == nil && profile.Role == models.RoleAttendee {
		bookmarks, err := s.interactionRepo.CountBookmarks(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to count bookmarks: %w", err)
		}
		counts.Bookmarks = bookmarks
	}

	return counts, nil
}

// ListNotifications lists the user's notifications, newest first.
func (s *NotificationService) ListNotifications(userID uint64) ([]models.Notification, error) {
	return s.notificationRepo.ListByUser(userID)
}

// MarkRead marks one of the user's notifications as read.
func (s *NotificationService) MarkRead(id, userID uint64) error {
	if err := s.notificationRepo.MarkRead(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks all of the user's notifications as read.
func (s *NotificationService) MarkAllRead(userID uint64) error {
	return s.notificationRepo.MarkAllRead(userID)
}
