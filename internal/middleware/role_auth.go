package middleware

import (
	"net/http"

	"github.com/eventlite/eventlite-api/internal/constants"
	"github.com/eventlite/eventlite-api/internal/database"
	apierrors "github.com/eventlite/eventlite-api/internal/errors"
	"github.com/eventlite/eventlite-api/internal/models"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// denial is the outcome of the role check. The predicate is shared; only the
// rendering differs between the data-endpoint and page-flow adapters.
type denial int

const (
	denyNone denial = iota
	denyUnauthenticated
	denyForbidden
)

// authorize is the single role predicate: resolve the session principal, load
// their profile, compare roles. It stores the profile in the context on
// success so handlers don't reload it.
func authorize(c *gin.Context, required models.Role) denial {
	userID, exists := GetUserID(c)
	if !exists {
		// Not behind RequireAuth; fall back to the session directly.
		session := sessions.Default(c)
		raw := session.Get(constants.ContextKeyUserID)
		if raw == nil {
			return denyUnauthenticated
		}
		id, ok := raw.(uint64)
		if !ok {
			return denyUnauthenticated
		}
		c.Set(constants.ContextKeyUserID, id)
		userID = id
	}

	var profile models.Profile
	if err := database.GetDB().Where("user_id = ?", userID).First(&profile).Error; err != nil {
		// No profile means no role, which is a Forbidden, not a missing login.
		return denyForbidden
	}

	if profile.Role != required {
		return denyForbidden
	}

	c.Set(constants.ContextKeyProfile, profile)
	return denyNone
}

// RequireRole gates a data endpoint on the given role: 401 without a
// principal, 403 on role mismatch.
func RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch authorize(c, required) {
		case denyUnauthenticated:
			apierrors.Unauthorized(c, "")
			c.Abort()
		case denyForbidden:
			apierrors.Forbidden(c, roleDenialMessage(required))
			c.Abort()
		default:
			c.Next()
		}
	}
}

// RequireRolePage gates a page flow on the given role: unauthenticated users
// are redirected to the login page, wrong-role users get a permission-denied
// response.
func RequireRolePage(required models.Role, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch authorize(c, required) {
		case denyUnauthenticated:
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
		case denyForbidden:
			apierrors.Forbidden(c, roleDenialMessage(required))
			c.Abort()
		default:
			c.Next()
		}
	}
}

func roleDenialMessage(required models.Role) string {
	if required == models.RoleOrganizer {
		return "Only organizers can perform this action"
	}
	return "Only attendees can perform this action"
}

// GetProfile retrieves the profile stored by the role middleware
func GetProfile(c *gin.Context) (models.Profile, bool) {
	value, exists := c.Get(constants.ContextKeyProfile)
	if !exists {
		return models.Profile{}, false
	}
	profile, ok := value.(models.Profile)
	return profile, ok
}
