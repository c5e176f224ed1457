package models

import "time"

type Comment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	EventID   uint64    `gorm:"not null;index" json:"event_id"`
	AuthorID  uint64    `gorm:"not null" json:"author_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Event  Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Author User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
