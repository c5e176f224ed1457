package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	StartsAt    time.Time      `gorm:"not null" json:"starts_at"`
	OrganizerID uint64         `gorm:"not null;index" json:"organizer_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Organizer User       `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	Sessions  []Session  `gorm:"foreignKey:EventID" json:"sessions,omitempty"`
	Bookmarks []Bookmark `gorm:"foreignKey:EventID" json:"-"`
	Comments  []Comment  `gorm:"foreignKey:EventID" json:"comments,omitempty"`
}
