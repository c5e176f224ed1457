package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eventlite/eventlite-api/internal/database"
	"github.com/eventlite/eventlite-api/internal/models"
	"github.com/eventlite/eventlite-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEmptyComment           = errors.New("comment body must not be empty")
	ErrFailedToCreateComment  = errors.New("failed to create comment")
	ErrFailedToNotify         = errors.New("failed to create notification")
	ErrFailedToToggleBookmark = errors.New("failed to toggle bookmark")
)

// InteractionService handles attendee interactions with events: bookmarks and
// comments with their organizer notifications.
type InteractionService struct {
	interactionRepo repository.InteractionRepository
	eventRepo       repository.EventRepository
	userRepo        repository.UserRepository
}

// NewInteractionService creates a new InteractionService.
func NewInteractionService(
	interactionRepo repository.InteractionRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
) *InteractionService {
	return &InteractionService{
		interactionRepo: interactionRepo,
		eventRepo:       eventRepo,
		userRepo:        userRepo,
	}
}

// ToggleResult reports the bookmark state after a toggle.
type ToggleResult struct {
	Bookmarked bool
	Message    string
}

// ToggleBookmark flips the bookmark state for a (user, event) pair. Calling it
// twice in a row restores the original state. The existence check is not
// atomic against a concurrent duplicate request; the unique index on
// (user_id, event_id) is the authoritative guard, and a unique violation on
// create is reported as "already bookmarked" rather than an error.
func (s *InteractionService) ToggleBookmark(userID, eventID uint64) (*ToggleResult, error) {
	if _, err := s.eventRepo.FindByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	_, err := s.interactionRepo.FindBookmark(userID, eventID)
	switch {
	case err == nil:
		if err := s.interactionRepo.DeleteBookmark(userID, eventID); err != nil {
			return nil, ErrFailedToToggleBookmark
		}
		return &ToggleResult{Bookmarked: false, Message: "Bookmark removed"}, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		bookmark := &models.Bookmark{UserID: userID, EventID: eventID}
		if err := s.interactionRepo.CreateBookmark(bookmark); err != nil {
			if database.IsUniqueViolation(err) {
				// A concurrent request won the race; the event is bookmarked
				// either way.
				return &ToggleResult{Bookmarked: true, Message: "Event bookmarked"}, nil
			}
			return nil, ErrFailedToToggleBookmark
		}
		return &ToggleResult{Bookmarked: true, Message: "Event bookmarked"}, nil

	default:
		return nil, fmt.Errorf("failed to check bookmark: %w", err)
	}
}

// AddComment persists an attendee's comment on an event and notifies the
// event's organizer. The comment and the notification are written in one
// transaction: every stored comment has exactly one notification, and a
// notification is never stored without its comment.
func (s *InteractionService) AddComment(userID, eventID uint64, body string) (*models.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyComment
	}

	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	author, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find author: %w", err)
	}

	comment := &models.Comment{
		EventID:  event.ID,
		AuthorID: author.ID,
		Body:     body,
	}

	notification := &models.Notification{
		UserID:  event.OrganizerID,
		Message: fmt.Sprintf("%s commented on your event: %s", author.Username, event.Title),
	}

	if err := s.interactionRepo.CreateCommentWithNotification(comment, notification); err != nil {
		switch {
		case errors.Is(err, repository.ErrCreateComment):
			return nil, ErrFailedToCreateComment
		case errors.Is(err, repository.ErrCreateNotification):
			return nil, ErrFailedToNotify
		default:
			return nil, fmt.Errorf("failed to add comment: %w", err)
		}
	}

	comment.Author = *author
	return comment, nil
}

// ListBookmarkedEvents lists the events the user has bookmarked.
func (s *InteractionService) ListBookmarkedEvents(userID uint64) ([]models.Event, error) {
	return s.interactionRepo.ListBookmarkedEvents(userID)
}
