package models

import "time"

// Bookmark marks an attendee's interest in an event. The composite unique
// index is the authoritative guard against duplicates; a unique violation on
// create means a concurrent request already bookmarked the event.
type Bookmark struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_bookmarks_user_event" json:"user_id"`
	EventID   uint64    `gorm:"not null;uniqueIndex:idx_bookmarks_user_event" json:"event_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Event Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}
