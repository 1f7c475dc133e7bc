package model

import "time"

// Notification is the persisted copy of a push message sent to a user.
type Notification struct {
	ID     string `gorm:"primaryKey;size:36;not null"`
	UserID string `gorm:"size:36;index;not null"`
	User   *User  `gorm:"foreignKey:UserID"`

	Title string `gorm:"size:255;not null"`
	Body  string `gorm:"type:text"`
	// JSON payload delivered alongside the push (type, ids, status).
	Data string `gorm:"type:text"`

	CreatedAt time.Time
}
