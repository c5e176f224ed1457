package repository

import (
	"github.com/eventlite/eventlite-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// CreateWithProfile creates a user and their role profile within a single
	// transaction. The profile write is an upsert keyed on user_id, so a
	// concurrently provisioned default profile can never produce a duplicate
	// or overrule the role chosen at signup.
	CreateWithProfile(user *models.User, profile *models.Profile) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindProfile finds the profile of a user
	FindProfile(userID uint64) (*models.Profile, error)

	// EnsureProfile creates a profile with the given role if the user has
	// none yet. An existing profile is left untouched.
	EnsureProfile(userID uint64, role models.Role) error
}

// EventRepository defines the interface for event and session data access
type EventRepository interface {
	// Create creates a new event
	Create(event *models.Event) error

	// FindByID finds an event by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Event, error)

	// List retrieves events with title search and pagination
	List(filter EventFilter) ([]models.Event, int64, error)

	// ListByOrganizer lists an organizer's events, newest first
	ListByOrganizer(organizerID uint64) ([]models.Event, error)

	// Update updates an event
	Update(event *models.Event) error

	// Delete removes an event together with its sessions, bookmarks and
	// comments
	Delete(id uint64) error

	// CreateSession creates a session inside an event
	CreateSession(session *models.Session) error
}

// EventFilter holds filtering options for listing events
type EventFilter struct {
	Query string
	Page  int
	Limit int
}

// InteractionRepository defines the interface for bookmark and comment data
// access
type InteractionRepository interface {
	// FindBookmark finds a bookmark by its (user, event) pair
	FindBookmark(userID, eventID uint64) (*models.Bookmark, error)

	// CreateBookmark creates a bookmark. Callers must treat a unique
	// violation as "already bookmarked", not as a failure.
	CreateBookmark(bookmark *models.Bookmark) error

	// DeleteBookmark removes the bookmark for a (user, event) pair
	DeleteBookmark(userID, eventID uint64) error

	// CountBookmarks counts a user's bookmarks
	CountBookmarks(userID uint64) (int64, error)

	// CountBookmarksForEvent counts how many users bookmarked an event
	CountBookmarksForEvent(eventID uint64) (int64, error)

	// ListBookmarkedEvents lists the events a user has bookmarked, most
	// recently bookmarked first
	ListBookmarkedEvents(userID uint64) ([]models.Event, error)

	// CreateCommentWithNotification persists a comment and the notification
	// to the event's organizer atomically. If either insert fails, neither
	// row remains.
	CreateCommentWithNotification(comment *models.Comment, notification *models.Notification) error
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// ListByUser lists a user's notifications, newest first
	ListByUser(userID uint64) ([]models.Notification, error)

	// CountUnread counts a user's unread notifications
	CountUnread(userID uint64) (int64, error)

	// MarkRead marks one of the user's notifications as read. Returns
	// gorm.ErrRecordNotFound if the notification does not exist or is not
	// addressed to the user.
	MarkRead(id, userID uint64) error

	// MarkAllRead marks all of the user's notifications as read
	MarkAllRead(userID uint64) error
}
