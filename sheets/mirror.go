// Package sheets mirrors the apps table into a Google spreadsheet. The
// mirror is a secondary data sink: every operation here is best effort from
// the caller's point of view and the database remains the source of truth.
package sheets

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/solanaappkit/directory/internal/algorithms"
	"github.com/solanaappkit/directory/models"
)

const (
	dataRange   = "Apps!A2:N"
	appendRange = "Apps!A:N"
	idRange     = "Apps!A2:A"
)

// Mirror reads and writes the spreadsheet copy of the apps table.
type Mirror struct {
	spreadsheetID string
	email         string
	privateKey    []byte

	// the authorised service is built on first use and reused; Sheets
	// tokens are refreshed by the oauth2 transport, not by us.
	mu  sync.Mutex
	svc *sheets.Service
}

// New returns a Mirror for the given spreadsheet, authenticating as the
// service account identified by email and privateKey (PEM).
func New(spreadsheetID, email, privateKey string) *Mirror {
	return &Mirror{
		spreadsheetID: spreadsheetID,
		email:         email,
		privateKey:    []byte(privateKey),
	}
}

func (m *Mirror) service(ctx context.Context) (*sheets.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.svc != nil {
		return m.svc, nil
	}
	if m.spreadsheetID == "" || m.email == "" || len(m.privateKey) == 0 {
		return nil, fmt.Errorf("sheets: mirror credentials not configured")
	}
	conf := &jwt.Config{
		Email:      m.email,
		PrivateKey: m.privateKey,
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(context.Background())))
	if err != nil {
		return nil, fmt.Errorf("sheets: %w", err)
	}
	m.svc = svc
	return svc, nil
}

// Append adds the app as a new row at the bottom of the sheet.
func (m *Mirror) Append(ctx context.Context, app *models.App) error {
	svc, err := m.service(ctx)
	if err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{rowForApp(app)}}
	_, err = svc.Spreadsheets.Values.Append(m.spreadsheetID, appendRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return err
}

// ReadAll returns every app row in the sheet.
func (m *Mirror) ReadAll(ctx context.Context) ([]models.App, error) {
	svc, err := m.service(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := svc.Spreadsheets.Values.Get(m.spreadsheetID, dataRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return algorithms.Map(resp.Values, appFromRow), nil
}

// ReadApproved returns the rows marked shown.
func (m *Mirror) ReadApproved(ctx context.Context) ([]models.App, error) {
	apps, err := m.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return algorithms.Filter(apps, func(a models.App) bool { return a.IsShown }), nil
}

// UpdateShownStatus locates the app's row by scanning the id column and
// rewrites the single visibility cell.
func (m *Mirror) UpdateShownStatus(ctx context.Context, appID uint, shown bool) error {
	svc, err := m.service(ctx)
	if err != nil {
		return err
	}
	resp, err := svc.Spreadsheets.Values.Get(m.spreadsheetID, idRange).Context(ctx).Do()
	if err != nil {
		return err
	}
	want := strconv.FormatUint(uint64(appID), 10)
	for i, row := range resp.Values {
		if cell(row, 0) != want {
			continue
		}
		// data starts at sheet row 2
		target := fmt.Sprintf("Apps!%s%d", shownColumn, i+2)
		vr := &sheets.ValueRange{Values: [][]interface{}{{yesNo(shown)}}}
		_, err = svc.Spreadsheets.Values.Update(m.spreadsheetID, target, vr).
			ValueInputOption("RAW").
			Context(ctx).Do()
		return err
	}
	return fmt.Errorf("sheets: app %d not found in mirror", appID)
}
