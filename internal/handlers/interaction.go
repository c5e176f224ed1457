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

// InteractionHandler coordinates the attendee interaction endpoints: bookmark
// toggling and commenting.
type InteractionHandler struct {
	interactionService *services.InteractionService
}

// NewInteractionHandler creates a new InteractionHandler.
func NewInteractionHandler(interactionService *services.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
	}
}

// ToggleBookmark flips the current attendee's bookmark on an event.
func (h *InteractionHandler) ToggleBookmark(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid event ID")
		return
	}

	result, err := h.interactionService.ToggleBookmark(userID, eventID)
	if err != nil {
		respondInteractionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToggleBookmarkResponse{
		Bookmarked: result.Bookmarked,
		Message:    result.Message,
	})
}

// AddComment posts the current attendee's comment on an event and notifies
// the organizer.
func (h *InteractionHandler) AddComment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid event ID")
		return
	}

	type AddCommentRequest struct {
		Body string `json:"body"`
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.interactionService.AddComment(userID, eventID, req.Body)
	if err != nil {
		respondInteractionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AddCommentResponse{
		Success: true,
		Comment: dto.ToCommentDTO(*comment),
	})
}

// ListBookmarks returns the events the current attendee has bookmarked.
func (h *InteractionHandler) ListBookmarks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	events, err := h.interactionService.ListBookmarkedEvents(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch bookmarks")
		return
	}

	eventDTOs := make([]dto.EventDTO, len(events))
	for i, event := range events {
		eventDTOs[i] = dto.ToEventDTO(event)
	}

	c.JSON(http.StatusOK, gin.H{"events": eventDTOs})
}

func respondInteractionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEventNotFound):
		apierrors.NotFound(c, "Event not found")
	case errors.Is(err, services.ErrEmptyComment):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrFailedToCreateComment),
		errors.Is(err, services.ErrFailedToNotify),
		errors.Is(err, services.ErrFailedToToggleBookmark):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
