package directory

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type clickCount struct {
	Count int64 `json:"count"`
}

func TestClicksShow(t *testing.T) {
	require := require.New(t)
	env := setupEnv(t)
	h := testRouter(env)

	// reading never increments
	var body clickCount
	rec := do(t, h, get("/api/clicks"), &body)
	require.Equal(http.StatusOK, rec.Code)
	require.Zero(body.Count)

	rec = do(t, h, get("/api/clicks"), &body)
	require.Equal(http.StatusOK, rec.Code)
	require.Zero(body.Count)
}

func TestClicksCreate(t *testing.T) {
	require := require.New(t)
	env := setupEnv(t)
	h := testRouter(env)

	var body clickCount
	rec := do(t, h, post("/api/clicks"), &body)
	require.Equal(http.StatusOK, rec.Code)
	require.EqualValues(1, body.Count)

	rec = do(t, h, post("/api/clicks"), &body)
	require.Equal(http.StatusOK, rec.Code)
	require.EqualValues(2, body.Count)

	rec = do(t, h, get("/api/clicks"), &body)
	require.Equal(http.StatusOK, rec.Code)
	require.EqualValues(2, body.Count)
}

func TestClicksPerApp(t *testing.T) {
	require := require.New(t)
	env := setupEnv(t)
	h := testRouter(env)

	var body clickCount
	rec := do(t, h, formRequest("POST", "/api/clicks", map[string]string{"appName": "drift"}), &body)
	require.Equal(http.StatusOK, rec.Code)
	require.EqualValues(1, body.Count)

	// per-app counters do not touch the global one
	rec = do(t, h, get("/api/clicks"), &body)
	require.Equal(http.StatusOK, rec.Code)
	require.Zero(body.Count)

	rec = do(t, h, get("/api/clicks?appName=drift"), &body)
	require.Equal(http.StatusOK, rec.Code)
	require.EqualValues(1, body.Count)
}
