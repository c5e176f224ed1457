package models

import "time"

// Session is a timed slot inside an event. Sessions are owned by their event
// and are removed together with it.
type Session struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	EventID   uint64    `gorm:"not null;index" json:"event_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	StartsAt  time.Time `gorm:"not null" json:"starts_at"`
	EndsAt    time.Time `gorm:"not null" json:"ends_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Event Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}
