package directory

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"

	"github.com/solanaappkit/directory/internal/to"
)

// Protocol is one row of the externally maintained protocol list.
type Protocol struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link"`
}

const (
	fetchTimeout = 30 * time.Second
	fetchRetries = 3
)

// ProtocolsIndex fetches the external CSV source and returns it parsed.
func ProtocolsIndex(env *Env, w http.ResponseWriter, r *http.Request) error {
	if env.ProtocolsURL == "" {
		return errors.New("no protocols source configured")
	}
	body, err := fetchCSV(r.Context(), env.ProtocolsURL)
	if err != nil {
		return err
	}
	protocols, err := parseProtocols(body)
	if err != nil {
		return err
	}
	return to.JSON(w, protocols)
}

// fetchCSV fetches the source with a per-attempt timeout, retrying on
// network errors and non-200 responses with linearly increasing backoff.
func fetchCSV(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= fetchRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * time.Second):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
		var body string
		fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		err := requests.URL(url).
			CheckStatus(http.StatusOK).
			ToString(&body).
			Fetch(fctx)
		cancel()
		if err == nil {
			return body, nil
		}
		lastErr = err
	}
	return "", lastErr
}

// parseProtocols reads name/imageUrl/link columns out of the CSV, resolving
// columns from the header row and falling back to the first three columns.
// The header row and rows without a name are skipped.
func parseProtocols(body string) ([]Protocol, error) {
	reader := csv.NewReader(strings.NewReader(body))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []Protocol{}, nil
	}

	name, image, link := 0, 1, 2
	for i, h := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "protocol":
			name = i
		case "imageurl", "image", "logo":
			image = i
		case "link", "url", "website":
			link = i
		}
	}

	protocols := make([]Protocol, 0, len(rows)-1)
	for _, row := range rows[1:] {
		p := Protocol{
			Name:     field(row, name),
			ImageURL: field(row, image),
			Link:     field(row, link),
		}
		if p.Name == "" {
			continue
		}
		protocols = append(protocols, p)
	}
	return protocols, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
