package directory

import (
	"errors"
	"net/http"

	"github.com/solanaappkit/directory/internal/httpx"
	"github.com/solanaappkit/directory/internal/to"
)

// UploadCreate is the generic immediate-upload endpoint the submission form
// calls as soon as a file is picked, so the eventual create request carries
// ready URLs instead of raw bytes.
func UploadCreate(env *Env, w http.ResponseWriter, r *http.Request) error {
	data, name, err := formFile(r, "file")
	if err != nil {
		return err
	}
	if data == nil {
		return httpx.Error(http.StatusBadRequest, errors.New("file is required"))
	}
	kind := r.FormValue("type") // icon, banner or screenshot; anything else lands in misc

	res, err := uploadImage(env, r, kind, data, name)
	if err != nil {
		return err
	}
	return to.JSON(w, map[string]any{
		"url":     res.URL,
		"path":    res.Path,
		"type":    stringOrDefault(kind, "misc"),
		"storage": res.Backend,
	})
}
