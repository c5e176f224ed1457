package models

import "time"

type Role string

const (
	RoleOrganizer Role = "ORGANIZER"
	RoleAttendee  Role = "ATTENDEE"
)

// IsValid reports whether the role is one of the two known roles.
func (r Role) IsValid() bool {
	return r == RoleOrganizer || r == RoleAttendee
}

// Profile carries the role of a user. UserID is the primary key, so there can
// never be more than one profile per user; both the signup path and the
// default-provision path write it with an upsert.
type Profile struct {
	UserID    uint64    `gorm:"primarykey" json:"user_id"`
	Role      Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
