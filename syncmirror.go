package main

import (
	"context"
	"os"

	"golang.org/x/exp/slog"
	"gorm.io/gorm"

	"github.com/solanaappkit/directory/models"
	"github.com/solanaappkit/directory/sheets"
)

// SyncMirrorCmd reconciles the spreadsheet mirror with the apps table:
// missing apps are appended, existing rows get their visibility refreshed.
type SyncMirrorCmd struct {
	DSN           string `required:"" help:"database connection string" env:"DATABASE_URL"`
	SpreadsheetID string `required:"" help:"spreadsheet id of the mirror" env:"SHEETS_SPREADSHEET_ID"`
	SheetsEmail   string `required:"" help:"service account email" env:"SHEETS_CLIENT_EMAIL"`
	SheetsKey     string `required:"" help:"service account private key (PEM)" env:"SHEETS_PRIVATE_KEY"`
}

func (s *SyncMirrorCmd) Run(ctx *Context) error {
	db, err := gorm.Open(newDialector(s.DSN), &ctx.Config)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr))
	mirror := sheets.New(s.SpreadsheetID, s.SheetsEmail, s.SheetsKey)

	bg := context.Background()
	mirrored, err := mirror.ReadAll(bg)
	if err != nil {
		return err
	}
	shown := make(map[uint]bool, len(mirrored))
	for _, app := range mirrored {
		shown[app.ID] = app.IsShown
	}

	var apps []models.App
	if err := db.Order("created_at asc").Find(&apps).Error; err != nil {
		return err
	}

	var appended, updated int
	for i := range apps {
		app := &apps[i]
		was, ok := shown[app.ID]
		switch {
		case !ok:
			if err := mirror.Append(bg, app); err != nil {
				return err
			}
			appended++
		case was != app.IsShown:
			if err := mirror.UpdateShownStatus(bg, app.ID, app.IsShown); err != nil {
				return err
			}
			updated++
		}
	}

	logger.Info("mirror synchronised", "apps", len(apps), "appended", appended, "updated", updated)
	return nil
}
