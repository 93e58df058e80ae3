package directory

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solanaappkit/directory/models"
)

func TestCategoriesCreate(t *testing.T) {
	require := require.New(t)
	env := setupEnv(t)
	h := testRouter(env)

	var cat Category
	rec := do(t, h, formRequest("POST", "/api/categories", map[string]string{
		"name":        "DeFi",
		"description": "Decentralised finance",
	}), &cat)
	require.Equal(http.StatusCreated, rec.Code)
	require.NotZero(cat.ID)
	require.True(cat.IsActive)

	// the name is unique
	rec = do(t, h, formRequest("POST", "/api/categories", map[string]string{
		"name": "DeFi",
	}), nil)
	require.Equal(http.StatusBadRequest, rec.Code)

	rec = do(t, h, formRequest("POST", "/api/categories", map[string]string{
		"description": "nameless",
	}), nil)
	require.Equal(http.StatusBadRequest, rec.Code)
}

func TestCategoriesIndexSkipsInactive(t *testing.T) {
	require := require.New(t)
	env := setupEnv(t)
	h := testRouter(env)

	require.NoError(env.DB.Create(&models.Category{Name: "NFT", IsActive: true}).Error)
	require.NoError(env.DB.Create(&models.Category{Name: "Retired"}).Error)

	var cats []Category
	rec := do(t, h, get("/api/categories"), &cats)
	require.Equal(http.StatusOK, rec.Code)
	require.Len(cats, 1)
	require.Equal("NFT", cats[0].Name)
}

func TestCategoriesUpdate(t *testing.T) {
	require := require.New(t)
	env := setupEnv(t)
	h := testRouter(env)

	require.NoError(env.DB.Create(&models.Category{Name: "Gaming", IsActive: true}).Error)

	var cat Category
	rec := do(t, h, formRequest("PATCH", "/api/categories/1", map[string]string{
		"isActive": "false",
	}), &cat)
	require.Equal(http.StatusOK, rec.Code)
	require.False(cat.IsActive)
	require.Equal("Gaming", cat.Name)

	// deactivated categories drop out of the public list
	var cats []Category
	rec = do(t, h, get("/api/categories"), &cats)
	require.Equal(http.StatusOK, rec.Code)
	require.Empty(cats)
}

func TestCategoriesDestroy(t *testing.T) {
	require := require.New(t)
	env := setupEnv(t)
	h := testRouter(env)

	require.NoError(env.DB.Create(&models.Category{Name: "Tools", IsActive: true}).Error)

	var body map[string]any
	rec := do(t, h, del("/api/categories/1"), &body)
	require.Equal(http.StatusOK, rec.Code)
	require.Equal(true, body["success"])

	rec = do(t, h, get("/api/categories/1"), nil)
	require.Equal(http.StatusNotFound, rec.Code)
}
