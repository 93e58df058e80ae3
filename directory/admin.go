package directory

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/solanaappkit/directory/internal/algorithms"
	"github.com/solanaappkit/directory/internal/to"
	"github.com/solanaappkit/directory/models"
)

// AdminAppsIndex lists every app, shown or not, for the admin view.
func AdminAppsIndex(env *Env, w http.ResponseWriter, r *http.Request) error {
	var apps []models.App
	if err := models.PreloadScreenshots(env.DB).Order("created_at asc").Find(&apps).Error; err != nil {
		return err
	}
	return to.JSON(w, algorithms.Map(apps, func(a models.App) *App { return serialiseApp(&a) }))
}

// AppsToggleVisibility flips an app's is_shown flag. The flip is a single
// atomic UPDATE, so concurrent toggles serialise at the database. The new
// state is pushed to the spreadsheet mirror when one is configured; the
// database remains the source of truth and mirror failures only log.
func AppsToggleVisibility(env *Env, w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	app, err := take[models.App](env.DB, id)
	if err != nil {
		return err
	}

	err = env.DB.Model(&models.App{}).
		Where("id = ?", app.ID).
		Update("is_shown", gorm.Expr("NOT is_shown")).Error
	if err != nil {
		return err
	}
	if err := env.DB.Take(app, app.ID).Error; err != nil {
		return err
	}

	if env.Mirror != nil {
		if err := env.Mirror.UpdateShownStatus(r.Context(), app.ID, app.IsShown); err != nil {
			env.Log().Warn("mirror visibility update failed", "app", app.ID, "err", err)
		}
	}

	return to.JSON(w, map[string]any{"success": true, "isShown": app.IsShown})
}
