package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Local writes uploads under dir/uploads, mirroring the destination path and
// creating intermediate directories as needed. URLs are the public base URL
// joined with the root-relative file path.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal returns a Local store rooted at dir. baseURL is the public
// address the files are served from, without a trailing slash.
func NewLocal(dir, baseURL string) *Local {
	return &Local{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (l *Local) Upload(ctx context.Context, data []byte, path string) (Result, error) {
	name, err := l.resolve(path)
	if err != nil {
		return Result{}, &UploadError{Backend: "local", Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return Result{}, &UploadError{Backend: "local", Err: err}
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return Result{}, &UploadError{Backend: "local", Err: err}
	}
	return Result{
		URL:     l.baseURL + "/uploads/" + path,
		Path:    path,
		Backend: "local",
	}, nil
}

func (l *Local) Delete(ctx context.Context, path string) error {
	name, err := l.resolve(path)
	if err != nil {
		return err
	}
	return os.Remove(name)
}

// resolve maps a destination path to a filename under the upload root,
// refusing anything that would escape it.
func (l *Local) resolve(path string) (string, error) {
	root := filepath.Join(l.dir, "uploads")
	name := filepath.Join(root, filepath.FromSlash(path))
	if name != root && !strings.HasPrefix(name, root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes upload directory", path)
	}
	return name, nil
}
