package directory

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUploadCreate(t *testing.T) {
	require := require.New(t)
	env := setupEnv(t)

	req := multipartRequest(t, "POST", "/api/upload",
		map[string]string{"type": "icon"},
		upload{field: "file", filename: "logo.png", data: pngBytes(t)},
	)
	var body struct {
		URL     string `json:"url"`
		Path    string `json:"path"`
		Type    string `json:"type"`
		Storage string `json:"storage"`
	}
	rec := do(t, testRouter(env), req, &body)
	require.Equal(http.StatusOK, rec.Code)
	require.Equal("icon", body.Type)
	require.Equal("local", body.Storage)
	require.True(strings.HasPrefix(body.Path, "icons/"), body.Path)
	require.Equal("http://localhost:4000/uploads/"+body.Path, body.URL)
}

func TestUploadCreateUnknownType(t *testing.T) {
	require := require.New(t)
	env := setupEnv(t)

	req := multipartRequest(t, "POST", "/api/upload",
		nil,
		upload{field: "file", filename: "logo.png", data: pngBytes(t)},
	)
	var body struct {
		Path string `json:"path"`
		Type string `json:"type"`
	}
	rec := do(t, testRouter(env), req, &body)
	require.Equal(http.StatusOK, rec.Code)
	require.Equal("misc", body.Type)
	require.True(strings.HasPrefix(body.Path, "misc/"), body.Path)
}

func TestUploadCreateRequiresFile(t *testing.T) {
	require := require.New(t)
	env := setupEnv(t)

	req := multipartRequest(t, "POST", "/api/upload", map[string]string{"type": "icon"})
	rec := do(t, testRouter(env), req, nil)
	require.Equal(http.StatusBadRequest, rec.Code)
}
