package main

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/solanaappkit/directory/directory"
	"github.com/solanaappkit/directory/models"
	"github.com/solanaappkit/directory/storage"
)

// The handlers answer 400 on duplicate rows by matching
// gorm.ErrDuplicatedKey, which only works when the database is opened with
// error translation on. Open it the way the commands do and check a
// duplicate signup through the real router.
func TestCommandConfigTranslatesDuplicateKeys(t *testing.T) {
	require := require.New(t)

	ctx := baseContext(false)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New())
	db, err := gorm.Open(sqlite.Open(dsn), &ctx.Config)
	require.NoError(err)
	require.NoError(db.AutoMigrate(models.AllTables()...))

	env := &directory.Env{
		DB:     db,
		Logger: slog.New(slog.NewTextHandler(io.Discard)),
		Store:  storage.NewLocal(t.TempDir(), "http://localhost:4000"),
	}
	c := chi.NewRouter()
	c.Route("/api", func(r chi.Router) {
		directory.Routes(r, env)
	})

	signup := func() *httptest.ResponseRecorder {
		form := url.Values{"email": {"dev@example.com"}}
		req := httptest.NewRequest("POST", "/api/waitlist", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		c.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(http.StatusOK, signup().Code)
	require.Equal(http.StatusBadRequest, signup().Code)
}
