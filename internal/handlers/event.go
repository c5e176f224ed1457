package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/eventlite/eventlite-api/internal/dto"
	apierrors "github.com/eventlite/eventlite-api/internal/errors"
	"github.com/eventlite/eventlite-api/internal/middleware"
	"github.com/eventlite/eventlite-api/internal/repository"
	"github.com/eventlite/eventlite-api/internal/services"
	"github.com/eventlite/eventlite-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// EventHandler coordinates the event catalog HTTP handlers.
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// ListEvents returns the public event listing with optional title search.
func (h *EventHandler) ListEvents(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	events, total, err := h.eventService.ListEvents(repository.EventFilter{
		Query: c.Query("q"),
		Page:  params.Page,
		Limit: params.Limit,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch events")
		return
	}

	eventDTOs := make([]dto.EventDTO, len(events))
	for i, event := range events {
		eventDTOs[i] = dto.ToEventDTO(event)
	}

	c.JSON(http.StatusOK, dto.EventListResponse{
		Events: eventDTOs,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetEvent returns a single event with sessions, comments and bookmark count.
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid event ID")
		return
	}

	detail, err := h.eventService.GetEvent(eventID)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			apierrors.NotFound(c, "Event not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch event")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailDTO(detail.Event, detail.BookmarkCount))
}

// ListOrganizerEvents returns the current organizer's events.
func (h *EventHandler) ListOrganizerEvents(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	events, err := h.eventService.ListOrganizerEvents(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch events")
		return
	}

	eventDTOs := make([]dto.EventDTO, len(events))
	for i, event := range events {
		eventDTOs[i] = dto.ToEventDTO(event)
	}

	c.JSON(http.StatusOK, gin.H{"events": eventDTOs})
}

// CreateEvent creates a new event owned by the current organizer.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateEventRequest struct {
		Title       string    `json:"title" binding:"required"`
		Description string    `json:"description"`
		StartsAt    time.Time `json:"starts_at" binding:"required"`
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.eventService.CreateEvent(services.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		OrganizerID: userID,
	})
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventDTO(*event))
}

// UpdateEvent updates an event the current organizer owns.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	event, ok := middleware.GetEvent(c)
	if !ok {
		apierrors.InternalError(c, "Event not found in context")
		return
	}

	type UpdateEventRequest struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		StartsAt    *time.Time `json:"starts_at"`
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.eventService.UpdateEvent(&event, services.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
	})
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(*updated))
}

// DeleteEvent removes an event the current organizer owns, together with its
// sessions, bookmarks and comments.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	event, ok := middleware.GetEvent(c)
	if !ok {
		apierrors.InternalError(c, "Event not found in context")
		return
	}

	if err := h.eventService.DeleteEvent(event.ID); err != nil {
		apierrors.InternalError(c, "Failed to delete event")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully",
	})
}

// CreateSession adds a session to an event the current organizer owns.
func (h *EventHandler) CreateSession(c *gin.Context) {
	event, ok := middleware.GetEvent(c)
	if !ok {
		apierrors.InternalError(c, "Event not found in context")
		return
	}

	type CreateSessionRequest struct {
		Title    string    `json:"title" binding:"required"`
		StartsAt time.Time `json:"starts_at" binding:"required"`
		EndsAt   time.Time `json:"ends_at" binding:"required"`
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.eventService.CreateSession(services.CreateSessionInput{
		EventID:  event.ID,
		Title:    req.Title,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	})
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create session")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionDTO(*session))
}
