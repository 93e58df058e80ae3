package models

import "time"

// A Waitlist row is a single email signup. Email uniqueness is enforced at
// the database; a duplicate insert fails with a constraint violation rather
// than silently creating a second row. The notification fields are reserved
// for an out-of-band mailing process and are never written by this service.
type Waitlist struct {
	ID               uint      `gorm:"primarykey"`
	Email            string    `gorm:"uniqueIndex;size:255;not null"`
	SignupDate       time.Time `gorm:"autoCreateTime"`
	IsNotified       bool      `gorm:"not null;default:false"`
	NotificationDate *time.Time
	Source           string `gorm:"size:255"`
	Notes            string `gorm:"type:text"`
}
