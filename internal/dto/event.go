package dto

import (
	"time"

	"github.com/eventlite/eventlite-api/internal/models"
	"github.com/eventlite/eventlite-api/internal/utils"
)

// SessionDTO represents a session in API responses
type SessionDTO struct {
	ID       uint64    `json:"id"`
	EventID  uint64    `json:"event_id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// EventDTO represents an event in API responses
type EventDTO struct {
	ID          uint64       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	StartsAt    time.Time    `json:"starts_at"`
	OrganizerID uint64       `json:"organizer_id"`
	CreatedAt   time.Time    `json:"created_at"`
	Organizer   *UserDTO     `json:"organizer,omitempty"`
	Sessions    []SessionDTO `json:"sessions,omitempty"`
}

// EventDetailDTO represents a single event page: the event plus its comments
// and bookmark count
type EventDetailDTO struct {
	EventDTO
	Comments      []CommentDTO `json:"comments"`
	BookmarkCount int64        `json:"bookmark_count"`
}

// EventListResponse represents a paginated list of events
type EventListResponse struct {
	Events     []EventDTO               `json:"events"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToSessionDTO converts a Session model to SessionDTO
func ToSessionDTO(session models.Session) SessionDTO {
	return SessionDTO{
		ID:       session.ID,
		EventID:  session.EventID,
		Title:    session.Title,
		StartsAt: session.StartsAt,
		EndsAt:   session.EndsAt,
	}
}

// ToEventDTO converts an Event model to EventDTO
func ToEventDTO(event models.Event) EventDTO {
	dto := EventDTO{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		StartsAt:    event.StartsAt,
		OrganizerID: event.OrganizerID,
		CreatedAt:   event.CreatedAt,
	}

	if event.Organizer.ID != 0 {
		organizer := ToUserDTO(event.Organizer)
		dto.Organizer = &organizer
	}

	for _, session := range event.Sessions {
		dto.Sessions = append(dto.Sessions, ToSessionDTO(session))
	}

	return dto
}

// ToEventDetailDTO converts an event with comments to its detail DTO
func ToEventDetailDTO(event models.Event, bookmarkCount int64) EventDetailDTO {
	comments := make([]CommentDTO, len(event.Comments))
	for i, comment := range event.Comments {
		comments[i] = ToCommentDTO(comment)
	}

	return EventDetailDTO{
		EventDTO:      ToEventDTO(event),
		Comments:      comments,
		BookmarkCount: bookmarkCount,
	}
}
