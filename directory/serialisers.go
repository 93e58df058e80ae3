package directory

import (
	"time"

	"github.com/solanaappkit/directory/internal/algorithms"
	"github.com/solanaappkit/directory/models"
)

// serialisers for the directory API responses.

type App struct {
	ID               uint         `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	IconURL          string       `json:"iconUrl"`
	Category         string       `json:"category"`
	Price            string       `json:"price"`
	Developer        string       `json:"developer"`
	Rating           float64      `json:"rating"`
	Downloads        string       `json:"downloads"`
	WebsiteURL       string       `json:"websiteUrl"`
	AndroidURL       string       `json:"androidUrl"`
	IOSURL           string       `json:"iosUrl"`
	SolanaMobileURL  string       `json:"solanaMobileUrl"`
	ProjectTwitter   string       `json:"projectTwitter"`
	SubmitterTwitter string       `json:"submitterTwitter"`
	ContractAddress  string       `json:"contractAddress"`
	FeatureBannerURL string       `json:"featureBannerUrl"`
	Tags             []string     `json:"tags"`
	IsShown          bool         `json:"isShown"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
	Screenshots      []Screenshot `json:"screenshots,omitempty"`
}

type Screenshot struct {
	ID        uint      `json:"id"`
	AppID     uint      `json:"appId"`
	ImageURL  string    `json:"imageUrl"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

type Category struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IconURL     string    `json:"iconUrl"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func serialiseApp(app *models.App) *App {
	tags := app.Tags
	if tags == nil {
		tags = []string{}
	}
	return &App{
		ID:               app.ID,
		Name:             app.Name,
		Description:      app.Description,
		IconURL:          app.IconURL,
		Category:         app.Category,
		Price:            app.Price,
		Developer:        app.Developer,
		Rating:           app.Rating,
		Downloads:        app.Downloads,
		WebsiteURL:       app.WebsiteURL,
		AndroidURL:       app.AndroidURL,
		IOSURL:           app.IOSURL,
		SolanaMobileURL:  app.SolanaMobileURL,
		ProjectTwitter:   app.ProjectTwitter,
		SubmitterTwitter: app.SubmitterTwitter,
		ContractAddress:  app.ContractAddress,
		FeatureBannerURL: app.FeatureBannerURL,
		Tags:             tags,
		IsShown:          app.IsShown,
		CreatedAt:        app.CreatedAt,
		UpdatedAt:        app.UpdatedAt,
		Screenshots:      algorithms.Map(app.Screenshots, serialiseScreenshot),
	}
}

func serialiseScreenshot(ss models.Screenshot) Screenshot {
	return Screenshot{
		ID:        ss.ID,
		AppID:     ss.AppID,
		ImageURL:  ss.ImageURL,
		SortOrder: ss.SortOrder,
		CreatedAt: ss.CreatedAt,
	}
}

func serialiseCategory(cat *models.Category) *Category {
	return &Category{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		IconURL:     cat.IconURL,
		IsActive:    cat.IsActive,
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}
