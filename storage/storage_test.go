package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestSanitizeFilename(t *testing.T) {
	require := require.New(t)

	require.Equal("screenshot.png", SanitizeFilename("screenshot.png"))
	require.Equal("my_app-v2.png", SanitizeFilename("my_app-v2.png"))
	require.Equal("appicon.png", SanitizeFilename("app icon!.png"))

	// traversal attempts collapse to a plain filename
	got := SanitizeFilename("../../etc/passwd")
	require.NotContains(got, "/")
	require.False(strings.HasPrefix(got, "."))

	// nothing left over means a generated name, not an empty one
	require.NotEmpty(SanitizeFilename("🚀🚀🚀"))
	require.NotEmpty(SanitizeFilename("..."))
}

func TestPath(t *testing.T) {
	require := require.New(t)

	require.Regexp(regexp.MustCompile(`^icons/\d+-phantom\.png$`), Path("icon", "phantom.png"))
	require.Regexp(regexp.MustCompile(`^banners/\d+-b\.png$`), Path("banner", "b.png"))
	require.Regexp(regexp.MustCompile(`^screenshots/\d+-s\.png$`), Path("screenshot", "s.png"))
	require.Regexp(regexp.MustCompile(`^misc/\d+-x\.bin$`), Path("", "x.bin"))
}

func TestLocal(t *testing.T) {
	t.Run("upload writes under the upload root", func(t *testing.T) {
		require := require.New(t)
		dir := t.TempDir()
		l := NewLocal(dir, "http://localhost:4000/")

		res, err := l.Upload(context.Background(), []byte("png bytes"), "icons/123-app.png")
		require.NoError(err)
		require.Equal("http://localhost:4000/uploads/icons/123-app.png", res.URL)
		require.Equal("local", res.Backend)

		data, err := os.ReadFile(filepath.Join(dir, "uploads", "icons", "123-app.png"))
		require.NoError(err)
		require.Equal("png bytes", string(data))
	})
	t.Run("upload refuses paths that escape the root", func(t *testing.T) {
		require := require.New(t)
		l := NewLocal(t.TempDir(), "http://localhost:4000")

		_, err := l.Upload(context.Background(), []byte("x"), "../../outside.png")
		require.Error(err)
		var ue *UploadError
		require.True(errors.As(err, &ue))
		require.Equal("local", ue.Backend)
	})
	t.Run("delete removes the stored file", func(t *testing.T) {
		require := require.New(t)
		dir := t.TempDir()
		l := NewLocal(dir, "http://localhost:4000")

		_, err := l.Upload(context.Background(), []byte("x"), "misc/1-x.bin")
		require.NoError(err)
		require.NoError(l.Delete(context.Background(), "misc/1-x.bin"))
		_, err = os.Stat(filepath.Join(dir, "uploads", "misc", "1-x.bin"))
		require.True(os.IsNotExist(err))
	})
}

// failingStore rejects every call, standing in for an unreachable backend.
type failingStore struct{}

func (failingStore) Upload(ctx context.Context, data []byte, path string) (Result, error) {
	return Result{}, &UploadError{Backend: "remote", Status: 503, Err: errors.New("unavailable")}
}

func (failingStore) Delete(ctx context.Context, path string) error {
	return errors.New("unavailable")
}

func TestChain(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr))

	t.Run("falls back to the next store on failure", func(t *testing.T) {
		require := require.New(t)
		local := NewLocal(t.TempDir(), "http://localhost:4000")
		chain := NewChain(logger, failingStore{}, local)

		res, err := chain.Upload(context.Background(), []byte("x"), "icons/1-a.png")
		require.NoError(err)
		require.Equal("local", res.Backend)
	})
	t.Run("reports the last error when every store fails", func(t *testing.T) {
		require := require.New(t)
		chain := NewChain(logger, failingStore{}, failingStore{})

		_, err := chain.Upload(context.Background(), []byte("x"), "icons/1-a.png")
		require.Error(err)
		var ue *UploadError
		require.True(errors.As(err, &ue))
		require.Equal(503, ue.Status)
	})
}
