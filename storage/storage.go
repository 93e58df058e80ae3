// Package storage stores uploaded images and resolves them to public URLs.
// Two backends exist, a local filesystem writer and Cloudinary; a chain
// combines them so a remote failure degrades to local storage instead of
// failing the upload.
package storage

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// A Store persists an uploaded file at a destination path and returns a
// public URL for it.
type Store interface {
	// Upload stores data at path and returns where it ended up.
	Upload(ctx context.Context, data []byte, path string) (Result, error)
	// Delete removes the file at path. Callers treat delete as best
	// effort; a failed delete must never abort the operation that
	// triggered it.
	Delete(ctx context.Context, path string) error
}

// Result describes a stored file.
type Result struct {
	URL     string `json:"url"`
	Path    string `json:"path"`
	Backend string `json:"storage"`
}

// UploadError is returned when a backend rejects an upload. Status carries
// the provider's HTTP status when one is available, otherwise zero.
type UploadError struct {
	Backend string
	Status  int
	Err     error
}

func (e *UploadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s upload failed (status %d): %v", e.Backend, e.Status, e.Err)
	}
	return fmt.Sprintf("%s upload failed: %v", e.Backend, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename reduces name to characters safe to use on disk and in
// URLs. Path separators are stripped, so a traversal attempt such as
// "../../x.png" collapses to a plain filename. Leading dots are dropped so
// the result can never be a dotfile or a relative path component.
func SanitizeFilename(name string) string {
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = uuid.New().String()
	}
	return name
}

// Path builds a destination path for an upload: the kind subfolder plus a
// timestamp-prefixed sanitized filename. The timestamp prefix is the only
// collision-avoidance strategy; there is no content hashing.
func Path(kind, filename string) string {
	return fmt.Sprintf("%s/%d-%s", kindFolder(kind), time.Now().UnixMilli(), SanitizeFilename(filename))
}

func kindFolder(kind string) string {
	switch kind {
	case "icon":
		return "icons"
	case "banner":
		return "banners"
	case "screenshot":
		return "screenshots"
	default:
		return "misc"
	}
}
