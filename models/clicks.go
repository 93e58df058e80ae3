package models

import "time"

// GlobalClicksName is the counter key used when no app name is supplied.
const GlobalClicksName = "global-clicks"

// A ClickCounter is a named monotonically increasing counter. Exactly one
// row exists per name; rows are created lazily on first read or increment.
type ClickCounter struct {
	ID        uint `gorm:"primarykey"`
	UpdatedAt time.Time
	Name      string `gorm:"uniqueIndex;size:255;not null"`
	Count     int    `gorm:"not null;default:0"`
}

// ClickCounterName resolves the counter key for an optional app name.
func ClickCounterName(appName string) string {
	if appName == "" {
		return GlobalClicksName
	}
	return "app-" + appName
}
