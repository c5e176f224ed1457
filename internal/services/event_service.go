package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eventlite/eventlite-api/internal/models"
	"github.com/eventlite/eventlite-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrTitleRequired = errors.New("title is required")
)

// EventService handles event and session business logic.
type EventService struct {
	eventRepo       repository.EventRepository
	interactionRepo repository.InteractionRepository
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo repository.EventRepository, interactionRepo repository.InteractionRepository) *EventService {
	return &EventService{
		eventRepo:       eventRepo,
		interactionRepo: interactionRepo,
	}
}

// ListEvents returns events matching the filter plus the total match count.
func (s *EventService) ListEvents(filter repository.EventFilter) ([]models.Event, int64, error) {
	return s.eventRepo.List(filter)
}

// EventDetail bundles an event with its bookmark count.
type EventDetail struct {
	Event         models.Event
	BookmarkCount int64
}

// GetEvent loads an event with organizer, sessions and comments.
func (s *EventService) GetEvent(id uint64) (*EventDetail, error) {
	event, err := s.eventRepo.FindByID(id, "Organizer", "Sessions", "Comments", "Comments.Author")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	count, err := s.interactionRepo.CountBookmarksForEvent(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookmarks: %w", err)
	}

	return &EventDetail{Event: *event, BookmarkCount: count}, nil
}

// ListOrganizerEvents lists the organizer's own events.
func (s *EventService) ListOrganizerEvents(organizerID uint64) ([]models.Event, error) {
	return s.eventRepo.ListByOrganizer(organizerID)
}

// CreateEventInput holds the fields an organizer provides for a new event.
type CreateEventInput struct {
	Title       string
	Description string
	StartsAt    time.Time
	OrganizerID uint64
}

// CreateEvent creates an event owned by the organizer.
func (s *EventService) CreateEvent(input CreateEventInput) (*models.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	event := &models.Event{
		Title:       title,
		Description: input.Description,
		StartsAt:    input.StartsAt,
		OrganizerID: input.OrganizerID,
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// UpdateEventInput holds the updatable event fields. Nil pointers mean "leave
// as is".
type UpdateEventInput struct {
	Title       *string
	Description *string
	StartsAt    *time.Time
}

// UpdateEvent applies the provided fields to an event the caller owns.
func (s *EventService) UpdateEvent(event *models.Event, input UpdateEventInput) (*models.Event, error) {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		event.Title = title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.StartsAt != nil {
		event.StartsAt = *input.StartsAt
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// DeleteEvent removes an event together with its sessions, bookmarks and
// comments.
func (s *EventService) DeleteEvent(id uint64) error {
	return s.eventRepo.Delete(id)
}

// CreateSessionInput holds the fields for a new session inside an event.
type CreateSessionInput struct {
	EventID  uint64
	Title    string
	StartsAt time.Time
	EndsAt   time.Time
}

// CreateSession adds a session to an event the caller owns.
func (s *EventService) CreateSession(input CreateSessionInput) (*models.Session, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	session := &models.Session{
		EventID:  input.EventID,
		Title:    title,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
	}

	if err := s.eventRepo.CreateSession(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}
