package repository

import (
	"errors"
	"fmt"

	"github.com/eventlite/eventlite-api/internal/models"
	"gorm.io/gorm"
)

// GormInteractionRepository is a GORM implementation of InteractionRepository
type GormInteractionRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateComment is returned when the comment insert fails inside the comment transaction.
	ErrCreateComment = errors.New("interaction repository: create comment failed")
	// ErrCreateNotification is returned when the notification insert fails inside the comment transaction.
	ErrCreateNotification = errors.New("interaction repository: create notification failed")
)

// NewInteractionRepository creates a new InteractionRepository
func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &GormInteractionRepository{db: db}
}

// FindBookmark finds a bookmark by its (user, event) pair
func (r *GormInteractionRepository) FindBookmark(userID, eventID uint64) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&bookmark).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// CreateBookmark creates a bookmark
func (r *GormInteractionRepository) CreateBookmark(bookmark *models.Bookmark) error {
	return r.db.Create(bookmark).Error
}

// DeleteBookmark removes the bookmark for a (user, event) pair
func (r *GormInteractionRepository) DeleteBookmark(userID, eventID uint64) error {
	return r.db.Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&models.Bookmark{}).Error
}

// CountBookmarks counts a user's bookmarks
func (r *GormInteractionRepository) CountBookmarks(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Bookmark{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountBookmarksForEvent counts how many users bookmarked an event
func (r *GormInteractionRepository) CountBookmarksForEvent(eventID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Bookmark{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

// ListBookmarkedEvents lists the events a user has bookmarked
func (r *GormInteractionRepository) ListBookmarkedEvents(userID uint64) ([]models.Event, error) {
	var events []models.Event
	err := r.db.
		Joins("JOIN bookmarks ON bookmarks.event_id = events.id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC").
		Preload("Organizer").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CreateCommentWithNotification persists the comment and its notification
// atomically. The notification insert observes the just-created comment, so a
// failure at either step leaves no partial state.
func (r *GormInteractionRepository) CreateCommentWithNotification(comment *models.Comment, notification *models.Notification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateComment, err)
		}

		if err := tx.Create(notification).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateNotification, err)
		}

		return nil
	})
}
