package models

import "time"

// A Category is an admin-managed taxonomy label. It is independent of
// App.Category, which remains free text; nothing enforces referential
// integrity between the two.
type Category struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"uniqueIndex;size:255;not null"`
	Description string `gorm:"type:text"`
	IconURL     string `gorm:"size:512"`
	IsActive    bool   `gorm:"not null;default:true"`
}
