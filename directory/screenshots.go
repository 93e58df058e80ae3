package directory

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/solanaappkit/directory/internal/httpx"
	"github.com/solanaappkit/directory/internal/to"
	"github.com/solanaappkit/directory/models"
)

// ScreenshotsCreate attaches an image to an existing app, either as a raw
// multipart file or as a pre-uploaded imageUrl.
func ScreenshotsCreate(env *Env, w http.ResponseWriter, r *http.Request) error {
	var params struct {
		AppID     uint   `json:"appId" schema:"appId"`
		ImageURL  string `json:"imageUrl" schema:"imageUrl"`
		SortOrder int    `json:"sortOrder" schema:"sortOrder"`
	}
	if err := httpx.Params(r, &params); err != nil {
		return err
	}
	if params.AppID == 0 {
		return httpx.Error(http.StatusBadRequest, errors.New("appId is required"))
	}

	var app models.App
	if err := env.DB.Take(&app, params.AppID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpx.Error(http.StatusBadRequest, errors.New("appId does not reference an app"))
		}
		return err
	}

	imageURL := params.ImageURL
	if imageURL == "" {
		data, name, err := formFile(r, "file")
		if err != nil {
			return err
		}
		if data == nil {
			return httpx.Error(http.StatusBadRequest, errors.New("either a file or an imageUrl is required"))
		}
		res, err := uploadImage(env, r, "screenshot", data, name)
		if err != nil {
			return err
		}
		imageURL = res.URL
	}

	ss := &models.Screenshot{
		AppID:     app.ID,
		ImageURL:  imageURL,
		SortOrder: params.SortOrder,
	}
	if err := env.DB.Create(ss).Error; err != nil {
		return err
	}
	return to.JSONStatus(w, http.StatusCreated, serialiseScreenshot(*ss))
}

// ScreenshotsUpdate reorders a screenshot or swaps its image.
func ScreenshotsUpdate(env *Env, w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	ss, err := take[models.Screenshot](env.DB, id)
	if err != nil {
		return err
	}

	var params struct {
		ImageURL  *string `json:"imageUrl" schema:"imageUrl"`
		SortOrder *int    `json:"sortOrder" schema:"sortOrder"`
	}
	if err := httpx.Params(r, &params); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	setString(updates, "image_url", params.ImageURL)
	if params.SortOrder != nil {
		updates["sort_order"] = *params.SortOrder
	}
	if len(updates) > 0 {
		if err := env.DB.Model(ss).Updates(updates).Error; err != nil {
			return err
		}
	}
	return to.JSON(w, serialiseScreenshot(*ss))
}

func ScreenshotsDestroy(env *Env, w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	ss, err := take[models.Screenshot](env.DB, id)
	if err != nil {
		return err
	}
	if err := env.DB.Delete(ss).Error; err != nil {
		return err
	}
	deleteStored(env, r, ss.ImageURL)
	return to.JSON(w, map[string]any{"success": true})
}
