package directory

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/solanaappkit/directory/internal/httpx"
	"github.com/solanaappkit/directory/internal/to"
	"github.com/solanaappkit/directory/models"
)

// The click counter is cosmetic. Reads lazily create a zero row, and a
// failed increment answers with the last known count instead of an error;
// this endpoint must never break the caller's flow.

type clicksParams struct {
	AppName string `json:"appName" schema:"appName"`
}

// ClicksShow returns the counter for the global key or a single app.
func ClicksShow(env *Env, w http.ResponseWriter, r *http.Request) error {
	var params clicksParams
	if err := httpx.Params(r, &params); err != nil {
		return err
	}
	name := models.ClickCounterName(params.AppName)

	var counter models.ClickCounter
	if err := env.DB.FirstOrCreate(&counter, models.ClickCounter{Name: name}).Error; err != nil {
		env.Log().Warn("click counter read failed", "name", name, "err", err)
		return to.JSON(w, map[string]any{"count": 0})
	}
	return to.JSON(w, map[string]any{"count": counter.Count})
}

// ClicksCreate increments the counter and returns the fresh value. The
// increment is a single UPDATE count = count + 1, so concurrent clicks
// serialise at the database rather than racing in application code.
func ClicksCreate(env *Env, w http.ResponseWriter, r *http.Request) error {
	var params clicksParams
	if err := httpx.Params(r, &params); err != nil {
		return err
	}
	name := models.ClickCounterName(params.AppName)

	var current models.ClickCounter
	err := env.DB.Take(&current, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// first click creates the row at 1, skipping the 0 -> 1 step
		counter := models.ClickCounter{Name: name, Count: 1}
		if err := env.DB.Create(&counter).Error; err != nil {
			env.Log().Warn("click counter create failed", "name", name, "err", err)
			return to.JSON(w, map[string]any{"count": 0})
		}
		return to.JSON(w, map[string]any{"count": 1})
	}
	if err != nil {
		env.Log().Warn("click counter read failed", "name", name, "err", err)
		return to.JSON(w, map[string]any{"count": 0})
	}

	err = env.DB.Model(&models.ClickCounter{}).
		Where("name = ?", name).
		Update("count", gorm.Expr("count + ?", 1)).Error
	if err != nil {
		env.Log().Warn("click increment failed, returning stale count", "name", name, "err", err)
		return to.JSON(w, map[string]any{"count": current.Count})
	}

	var fresh models.ClickCounter
	if err := env.DB.Take(&fresh, "name = ?", name).Error; err != nil {
		return to.JSON(w, map[string]any{"count": current.Count + 1})
	}
	return to.JSON(w, map[string]any{"count": fresh.Count})
}
