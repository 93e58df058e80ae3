package directory

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/solanaappkit/directory/internal/algorithms"
	"github.com/solanaappkit/directory/internal/httpx"
	"github.com/solanaappkit/directory/internal/to"
	"github.com/solanaappkit/directory/models"
)

// CategoriesIndex is the public category list; inactive categories are
// excluded.
func CategoriesIndex(env *Env, w http.ResponseWriter, r *http.Request) error {
	var cats []models.Category
	if err := env.DB.Where("is_active = ?", true).Order("name asc").Find(&cats).Error; err != nil {
		return err
	}
	return to.JSON(w, algorithms.Map(cats, func(c models.Category) *Category { return serialiseCategory(&c) }))
}

func CategoriesCreate(env *Env, w http.ResponseWriter, r *http.Request) error {
	var params struct {
		Name        string `json:"name" schema:"name"`
		Description string `json:"description" schema:"description"`
		IconURL     string `json:"iconUrl" schema:"iconUrl"`
	}
	if err := httpx.Params(r, &params); err != nil {
		return err
	}
	if strings.TrimSpace(params.Name) == "" {
		return httpx.Error(http.StatusBadRequest, errors.New("name is required"))
	}

	cat := &models.Category{
		Name:        strings.TrimSpace(params.Name),
		Description: params.Description,
		IconURL:     params.IconURL,
		IsActive:    true,
	}
	if err := env.DB.Create(cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httpx.Error(http.StatusBadRequest, errors.New("category already exists"))
		}
		return err
	}
	return to.JSONStatus(w, http.StatusCreated, serialiseCategory(cat))
}

func CategoriesShow(env *Env, w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	cat, err := take[models.Category](env.DB, id)
	if err != nil {
		return err
	}
	return to.JSON(w, serialiseCategory(cat))
}

func CategoriesUpdate(env *Env, w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	cat, err := take[models.Category](env.DB, id)
	if err != nil {
		return err
	}

	var params struct {
		Name        *string `json:"name" schema:"name"`
		Description *string `json:"description" schema:"description"`
		IconURL     *string `json:"iconUrl" schema:"iconUrl"`
		IsActive    *bool   `json:"isActive" schema:"isActive"`
	}
	if err := httpx.Params(r, &params); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	setString(updates, "name", params.Name)
	setString(updates, "description", params.Description)
	setString(updates, "icon_url", params.IconURL)
	if params.IsActive != nil {
		updates["is_active"] = *params.IsActive
	}

	if len(updates) > 0 {
		if err := env.DB.Model(cat).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httpx.Error(http.StatusBadRequest, errors.New("category already exists"))
			}
			return err
		}
	}
	return to.JSON(w, serialiseCategory(cat))
}

func CategoriesDestroy(env *Env, w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	cat, err := take[models.Category](env.DB, id)
	if err != nil {
		return err
	}
	if err := env.DB.Delete(cat).Error; err != nil {
		return err
	}
	return to.JSON(w, map[string]any{"success": true})
}
