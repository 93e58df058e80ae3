package directory

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/solanaappkit/directory/internal/httpx"
	"github.com/solanaappkit/directory/internal/to"
	"github.com/solanaappkit/directory/models"
)

// WaitlistShow returns the signup count.
func WaitlistShow(env *Env, w http.ResponseWriter, r *http.Request) error {
	var count int64
	if err := env.DB.Model(&models.Waitlist{}).Count(&count).Error; err != nil {
		return err
	}
	return to.JSON(w, map[string]any{"count": count})
}

// WaitlistCreate records an email signup. Duplicate emails fail the unique
// constraint and surface as a client error, never a silent second row.
func WaitlistCreate(env *Env, w http.ResponseWriter, r *http.Request) error {
	var params struct {
		Email  string `json:"email" schema:"email"`
		Source string `json:"source" schema:"source"`
		Notes  string `json:"notes" schema:"notes"`
	}
	if err := httpx.Params(r, &params); err != nil {
		return err
	}
	email := strings.TrimSpace(strings.ToLower(params.Email))
	if email == "" || !strings.Contains(email, "@") {
		return httpx.Error(http.StatusBadRequest, errors.New("a valid email is required"))
	}

	entry := &models.Waitlist{
		Email:  email,
		Source: params.Source,
		Notes:  params.Notes,
	}
	if err := env.DB.Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httpx.Error(http.StatusBadRequest, errors.New("email already registered"))
		}
		return err
	}
	return to.JSON(w, map[string]any{"success": true})
}
