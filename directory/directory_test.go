package directory

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-json-experiment/json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/solanaappkit/directory/models"
	"github.com/solanaappkit/directory/storage"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	require := require.New(t)
	// a named in-memory database so each test gets its own copy, shared
	// across the connection pool
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger: logger.Default.LogMode(func() logger.LogLevel {
			return logger.Warn
		}()),
	})
	require.NoError(err)

	err = db.AutoMigrate(models.AllTables()...)
	require.NoError(err)

	// enable foreign key constraints
	err = db.Exec("PRAGMA foreign_keys = ON").Error
	require.NoError(err)

	return db
}

func setupEnv(t *testing.T) *Env {
	t.Helper()
	return &Env{
		DB:     setupTestDB(t),
		Logger: slog.New(slog.NewTextHandler(io.Discard)),
		Store:  storage.NewLocal(t.TempDir(), "http://localhost:4000"),
	}
}

// testRouter wires the same route table the serve command uses.
func testRouter(env *Env) http.Handler {
	c := chi.NewRouter()
	c.Route("/api", func(r chi.Router) {
		Routes(r, env)
	})
	return c
}

// do runs a request through the router and decodes the JSON body into out.
func do(t *testing.T, h http.Handler, req *http.Request, out any) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if out != nil && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func get(target string) *http.Request { return httptest.NewRequest("GET", target, nil) }

func post(target string) *http.Request { return httptest.NewRequest("POST", target, nil) }

func del(target string) *http.Request { return httptest.NewRequest("DELETE", target, nil) }

// formRequest builds an urlencoded form request, the simple non-file case.
func formRequest(method, target string, fields map[string]string) *http.Request {
	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

type upload struct {
	field    string
	filename string
	data     []byte
}

// multipartRequest builds a multipart form request with optional file parts.
func multipartRequest(t *testing.T, method, target string, fields map[string]string, files ...upload) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = fw.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
