package models

import (
	"time"

	"gorm.io/gorm"
)

// An App is a single listing in the apps directory. Listings are created by
// the public submission form and start hidden; IsShown stays false until an
// admin toggles the listing visible.
type App struct {
	ID               uint `gorm:"primarykey"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Name             string `gorm:"size:255;not null"`
	Description      string `gorm:"type:text"`
	IconURL          string `gorm:"size:512"`
	Category         string `gorm:"size:128"` // free text label, not a Category reference
	Price            string `gorm:"size:64;not null;default:'Free'"`
	Developer        string `gorm:"size:255"`
	Rating           float64
	Downloads        string `gorm:"size:64;not null;default:'0'"` // magnitude string, e.g. "1M+"
	WebsiteURL       string `gorm:"size:512"`
	AndroidURL       string `gorm:"size:512"`
	IOSURL           string `gorm:"size:512"`
	SolanaMobileURL  string `gorm:"size:512"`
	ProjectTwitter   string `gorm:"size:255"`
	SubmitterTwitter string `gorm:"size:255"`
	ContractAddress  string `gorm:"size:255"`
	FeatureBannerURL string `gorm:"size:512"`
	Tags             []string `gorm:"serializer:json"`
	IsShown          bool     `gorm:"not null;default:false"`
	Screenshots      []Screenshot `gorm:"constraint:OnDelete:CASCADE;"`
}

// A Screenshot is one image belonging to an App. Screenshots are returned
// ordered by SortOrder ascending; the order need not be unique or contiguous.
type Screenshot struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	AppID     uint   `gorm:"not null;index"`
	ImageURL  string `gorm:"size:512"`
	SortOrder int    `gorm:"not null;default:0"`
}

// PreloadScreenshots returns a scope that preloads an app's screenshots in
// display order.
func PreloadScreenshots(db *gorm.DB) *gorm.DB {
	return db.Preload("Screenshots", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc")
	})
}
