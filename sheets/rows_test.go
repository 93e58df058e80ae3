package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/solanaappkit/directory/models"
)

func TestRowForApp(t *testing.T) {
	require := require.New(t)

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	app := &models.App{
		ID:        42,
		CreatedAt: created,
		Name:      "Phantom",
		Category:  "Wallet",
		IsShown:   true,
	}

	row := rowForApp(app)
	require.Len(row, numColumns)
	require.Equal("42", row[0])
	require.Equal("Phantom", row[1])
	require.Equal("Yes", row[12])
	require.Equal("2024-03-01T12:00:00Z", row[13])
}

func TestAppFromRow(t *testing.T) {
	require := require.New(t)

	t.Run("round trip", func(t *testing.T) {
		app := &models.App{
			ID:        7,
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Name:      "Jupiter",
			Category:  "DeFi",
			IconURL:   "https://example.com/icon.png",
			IsShown:   false,
		}
		got := appFromRow(rowForApp(app))
		require.Equal(app.ID, got.ID)
		require.Equal(app.Name, got.Name)
		require.Equal(app.IconURL, got.IconURL)
		require.False(got.IsShown)
		require.True(app.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("ragged rows read as empty cells", func(t *testing.T) {
		got := appFromRow([]interface{}{"9", "Tensor"})
		require.Equal(uint(9), got.ID)
		require.Equal("Tensor", got.Name)
		require.Empty(got.Category)
		require.False(got.IsShown)
	})

	t.Run("anything but Yes reads as hidden", func(t *testing.T) {
		row := rowForApp(&models.App{ID: 1, Name: "x"})
		row[12] = "yes" // only the literal "Yes" marks a row shown
		require.False(appFromRow(row).IsShown)
	})
}
