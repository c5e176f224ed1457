package constants

// Session
const (
	SessionCookieName = "eventlite_session"
	ContextKeyUserID  = "user_id"
	ContextKeyProfile = "profile"
	ContextKeyEvent   = "event"
)

// Auth
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// CommentTimestampLayout renders comment timestamps the way the event pages
// display them, e.g. "January 02, 2006 at 15:04".
const CommentTimestampLayout = "January 02, 2006 at 15:04"
