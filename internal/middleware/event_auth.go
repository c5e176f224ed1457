package middleware

import (
	"strconv"

	"github.com/eventlite/eventlite-api/internal/constants"
	"github.com/eventlite/eventlite-api/internal/database"
	apierrors "github.com/eventlite/eventlite-api/internal/errors"
	"github.com/eventlite/eventlite-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireEventOwner checks that the :id event exists and belongs to the
// current user. Events owned by someone else answer 404, not 403, so the
// organizer surface never confirms another organizer's event IDs.
func RequireEventOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventIDStr := c.Param("id")
		eventID, err := strconv.ParseUint(eventIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid event ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var event models.Event
		if err := database.GetDB().
			Where("organizer_id = ?", userID).
			First(&event, eventID).Error; err != nil {
			apierrors.NotFound(c, "Event not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyEvent, event)
		c.Next()
	}
}

// GetEvent retrieves the event stored by RequireEventOwner
func GetEvent(c *gin.Context) (models.Event, bool) {
	value, exists := c.Get(constants.ContextKeyEvent)
	if !exists {
		return models.Event{}, false
	}
	event, ok := value.(models.Event)
	return event, ok
}
