// Package directory implements the apps directory HTTP API: public listing
// and submission, admin visibility control, categories, screenshots, the
// click counter and the waitlist.
package directory

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
	"gorm.io/gorm"

	"github.com/solanaappkit/directory/internal/httpx"
	"github.com/solanaappkit/directory/internal/images"
	"github.com/solanaappkit/directory/sheets"
	"github.com/solanaappkit/directory/storage"
)

type Env struct {
	// DB is the database connection.
	DB     *gorm.DB
	Logger *slog.Logger
	// Store persists uploaded images.
	Store storage.Store
	// Mirror is the optional spreadsheet copy of the apps table; nil when
	// mirroring is disabled. Mirror failures are logged, never surfaced.
	Mirror *sheets.Mirror
	// ProtocolsURL is the external CSV source for the protocols list.
	ProtocolsURL string
}

func (e *Env) Log() *slog.Logger {
	return e.Logger
}

// pathID parses the {id} chi route parameter. A non-numeric id is a client
// error, not a lookup miss.
func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, httpx.Error(http.StatusBadRequest, fmt.Errorf("invalid id %q", chi.URLParam(r, "id")))
	}
	return uint(id), nil
}

// take loads a row by primary key, translating a missing row to 404.
func take[T any](db *gorm.DB, id uint) (*T, error) {
	var row T
	if err := db.Take(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httpx.Error(http.StatusNotFound, err)
		}
		return nil, err
	}
	return &row, nil
}

// formFile reads a multipart file field in full. An absent field is not an
// error; it returns nil data.
func formFile(r *http.Request, field string) ([]byte, string, error) {
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(20 << 20); err != nil {
			return nil, "", nil
		}
	}
	f, fh, err := r.FormFile(field)
	if err != nil {
		// http.ErrMissingFile and friends; the field simply wasn't sent
		return nil, "", nil
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Filename, nil
}

// uploadImage normalises and stores an uploaded image under the kind's
// subfolder.
func uploadImage(e *Env, r *http.Request, kind string, data []byte, name string) (storage.Result, error) {
	data, ext := images.Normalise(data)
	if ext != "" {
		name = strings.TrimSuffix(name, path.Ext(name)) + ext
	}
	return e.Store.Upload(r.Context(), data, storage.Path(kind, name))
}

// deleteStored removes a stored image given its public URL. Best effort:
// failures are logged and swallowed, deleting a record must never fail
// because its image could not be removed.
func deleteStored(e *Env, r *http.Request, url string) {
	p := storagePath(url)
	if p == "" {
		return
	}
	if err := e.Store.Delete(r.Context(), p); err != nil {
		e.Log().Warn("could not delete stored image", "path", p, "err", err)
	}
}

// storagePath recovers the destination path from a public URL; empty when
// the URL was not produced by one of our backends.
func storagePath(url string) string {
	if i := strings.Index(url, "/uploads/"); i >= 0 {
		return url[i+len("/uploads/"):]
	}
	if i := strings.Index(url, "/upload/"); i >= 0 {
		p := url[i+len("/upload/"):]
		// strip the version segment cloudinary inserts, e.g. v1699999999/
		if first, rest, ok := strings.Cut(p, "/"); ok && len(first) > 1 && first[0] == 'v' {
			if _, err := strconv.Atoi(first[1:]); err == nil {
				return rest
			}
		}
		return p
	}
	return ""
}

func stringOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
