package directory

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"

	"github.com/solanaappkit/directory/internal/algorithms"
	"github.com/solanaappkit/directory/internal/httpx"
	"github.com/solanaappkit/directory/internal/to"
	"github.com/solanaappkit/directory/models"
)

// AppsIndex is the public listing. It does not filter on is_shown; the
// admin flag gates the curated front-page list, which the client filters.
func AppsIndex(env *Env, w http.ResponseWriter, r *http.Request) error {
	var apps []models.App
	if err := models.PreloadScreenshots(env.DB).Order("created_at asc").Find(&apps).Error; err != nil {
		return err
	}
	return to.JSON(w, algorithms.Map(apps, func(a models.App) *App { return serialiseApp(&a) }))
}

type appParams struct {
	Name             string `json:"name" schema:"name"`
	Description      string `json:"description" schema:"description"`
	IconURL          string `json:"iconUrl" schema:"iconUrl"`
	Category         string `json:"category" schema:"category"`
	Price            string `json:"price" schema:"price"`
	Developer        string `json:"developer" schema:"developer"`
	Rating           string `json:"rating" schema:"rating"`
	Downloads        string `json:"downloads" schema:"downloads"`
	WebsiteURL       string `json:"websiteUrl" schema:"websiteUrl"`
	AndroidURL       string `json:"androidUrl" schema:"androidUrl"`
	IOSURL           string `json:"iosUrl" schema:"iosUrl"`
	SolanaMobileURL  string `json:"solanaMobileUrl" schema:"solanaMobileUrl"`
	ProjectTwitter   string `json:"projectTwitter" schema:"projectTwitter"`
	SubmitterTwitter string `json:"submitterTwitter" schema:"submitterTwitter"`
	ContractAddress  string `json:"contractAddress" schema:"contractAddress"`
	FeatureBannerURL string `json:"featureBannerUrl" schema:"featureBannerUrl"`
	Tags             string `json:"tags" schema:"tags"`
}

// AppsCreate handles the submission form. Name is the only required field;
// everything else defaults to a safe value. Images normally arrive as
// pre-uploaded URLs, but a raw icon or banner file is accepted as a
// fallback and uploaded here; a failed upload leaves the URL empty rather
// than aborting the submission.
func AppsCreate(env *Env, w http.ResponseWriter, r *http.Request) error {
	var params appParams
	if err := httpx.Params(r, &params); err != nil {
		return err
	}
	if strings.TrimSpace(params.Name) == "" {
		return httpx.Error(http.StatusBadRequest, errors.New("name is required"))
	}

	app := &models.App{
		Name:             strings.TrimSpace(params.Name),
		Description:      params.Description,
		IconURL:          params.IconURL,
		Category:         params.Category,
		Price:            stringOrDefault(params.Price, "Free"),
		Developer:        params.Developer,
		Rating:           parseRating(env, params.Rating),
		Downloads:        stringOrDefault(params.Downloads, "0"),
		WebsiteURL:       params.WebsiteURL,
		AndroidURL:       params.AndroidURL,
		IOSURL:           params.IOSURL,
		SolanaMobileURL:  params.SolanaMobileURL,
		ProjectTwitter:   params.ProjectTwitter,
		SubmitterTwitter: params.SubmitterTwitter,
		ContractAddress:  params.ContractAddress,
		FeatureBannerURL: params.FeatureBannerURL,
		Tags:             parseTags(env, params.Tags),
	}

	if app.IconURL == "" {
		if data, name, err := formFile(r, "icon"); err == nil && data != nil {
			if res, err := uploadImage(env, r, "icon", data, name); err != nil {
				env.Log().Warn("icon upload failed, creating app without icon", "app", app.Name, "err", err)
			} else {
				app.IconURL = res.URL
			}
		}
	}
	if app.FeatureBannerURL == "" {
		if data, name, err := formFile(r, "banner"); err == nil && data != nil {
			if res, err := uploadImage(env, r, "banner", data, name); err != nil {
				env.Log().Warn("banner upload failed, creating app without banner", "app", app.Name, "err", err)
			} else {
				app.FeatureBannerURL = res.URL
			}
		}
	}

	if err := env.DB.Create(app).Error; err != nil {
		return err
	}

	// the feature banner doubles as screenshot #0; a secondary write that
	// never rolls back the created app
	if app.FeatureBannerURL != "" {
		ss := &models.Screenshot{AppID: app.ID, ImageURL: app.FeatureBannerURL, SortOrder: 0}
		if err := env.DB.Create(ss).Error; err != nil {
			env.Log().Warn("could not record feature banner as screenshot", "app", app.ID, "err", err)
		} else {
			app.Screenshots = append(app.Screenshots, *ss)
		}
	}

	if env.Mirror != nil {
		if err := env.Mirror.Append(r.Context(), app); err != nil {
			env.Log().Warn("mirror append failed", "app", app.ID, "err", err)
		}
	}

	return to.JSONStatus(w, http.StatusCreated, serialiseApp(app))
}

// AppsShow returns one app with its screenshots in display order.
func AppsShow(env *Env, w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	app, err := take[models.App](models.PreloadScreenshots(env.DB), id)
	if err != nil {
		return err
	}
	return to.JSON(w, serialiseApp(app))
}

type appUpdateParams struct {
	Name             *string `json:"name" schema:"name"`
	Description      *string `json:"description" schema:"description"`
	IconURL          *string `json:"iconUrl" schema:"iconUrl"`
	Category         *string `json:"category" schema:"category"`
	Price            *string `json:"price" schema:"price"`
	Developer        *string `json:"developer" schema:"developer"`
	Rating           *string `json:"rating" schema:"rating"`
	Downloads        *string `json:"downloads" schema:"downloads"`
	WebsiteURL       *string `json:"websiteUrl" schema:"websiteUrl"`
	AndroidURL       *string `json:"androidUrl" schema:"androidUrl"`
	IOSURL           *string `json:"iosUrl" schema:"iosUrl"`
	SolanaMobileURL  *string `json:"solanaMobileUrl" schema:"solanaMobileUrl"`
	ProjectTwitter   *string `json:"projectTwitter" schema:"projectTwitter"`
	SubmitterTwitter *string `json:"submitterTwitter" schema:"submitterTwitter"`
	ContractAddress  *string `json:"contractAddress" schema:"contractAddress"`
	FeatureBannerURL *string `json:"featureBannerUrl" schema:"featureBannerUrl"`
	Tags             *string `json:"tags" schema:"tags"`
}

// AppsUpdate applies a partial update: only fields present in the request
// change, everything else keeps its prior value.
func AppsUpdate(env *Env, w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	app, err := take[models.App](env.DB, id)
	if err != nil {
		return err
	}

	var params appUpdateParams
	if err := httpx.Params(r, &params); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	setString(updates, "name", params.Name)
	setString(updates, "description", params.Description)
	setString(updates, "icon_url", params.IconURL)
	setString(updates, "category", params.Category)
	setString(updates, "price", params.Price)
	setString(updates, "developer", params.Developer)
	setString(updates, "downloads", params.Downloads)
	setString(updates, "website_url", params.WebsiteURL)
	setString(updates, "android_url", params.AndroidURL)
	setString(updates, "ios_url", params.IOSURL)
	setString(updates, "solana_mobile_url", params.SolanaMobileURL)
	setString(updates, "project_twitter", params.ProjectTwitter)
	setString(updates, "submitter_twitter", params.SubmitterTwitter)
	setString(updates, "contract_address", params.ContractAddress)
	setString(updates, "feature_banner_url", params.FeatureBannerURL)
	if params.Rating != nil {
		updates["rating"] = parseRating(env, *params.Rating)
	}
	if params.Tags != nil {
		updates["tags"] = parseTags(env, *params.Tags)
	}

	// a replacement icon file wins over any iconUrl field
	if data, name, ferr := formFile(r, "icon"); ferr == nil && data != nil {
		if res, uerr := uploadImage(env, r, "icon", data, name); uerr != nil {
			env.Log().Warn("replacement icon upload failed", "app", app.ID, "err", uerr)
		} else {
			if app.IconURL != "" {
				deleteStored(env, r, app.IconURL)
			}
			updates["icon_url"] = res.URL
		}
	}

	if len(updates) > 0 {
		if err := env.DB.Model(app).Updates(updates).Error; err != nil {
			return err
		}
	}
	return to.JSON(w, serialiseApp(app))
}

// AppsDestroy deletes an app, its screenshots, and best-effort the stored
// images behind them.
func AppsDestroy(env *Env, w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	app, err := take[models.App](models.PreloadScreenshots(env.DB), id)
	if err != nil {
		return err
	}

	if err := env.DB.Where("app_id = ?", app.ID).Delete(&models.Screenshot{}).Error; err != nil {
		return err
	}
	if err := env.DB.Delete(app).Error; err != nil {
		return err
	}

	deleteStored(env, r, app.IconURL)
	deleteStored(env, r, app.FeatureBannerURL)
	for _, ss := range app.Screenshots {
		deleteStored(env, r, ss.ImageURL)
	}

	return to.JSON(w, map[string]any{"success": true})
}

// parseTags decodes the JSON-encoded tags array the form submits. Malformed
// JSON is a logged warning and empty tags, never a hard failure.
func parseTags(env *Env, s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		env.Log().Warn("malformed tags, treating as empty", "tags", s, "err", err)
		return nil
	}
	return tags
}

// parseRating accepts the string form of the rating field.
func parseRating(env *Env, s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		env.Log().Warn("malformed rating, treating as zero", "rating", s, "err", err)
		return 0
	}
	return f
}

func setString(updates map[string]interface{}, column string, v *string) {
	if v != nil {
		updates[column] = *v
	}
}
