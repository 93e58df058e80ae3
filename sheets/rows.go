package sheets

import (
	"strconv"
	"time"

	"github.com/solanaappkit/directory/models"
)

// The mirror sheet is a fixed 14 column layout, A through N:
// id, name, category, description, iconUrl, websiteUrl, androidUrl, iosUrl,
// solanaMobileUrl, projectTwitter, submitterTwitter, contractAddress,
// isShown, createdAt. isShown is written as the literal "Yes"/"No".

const (
	numColumns  = 14
	shownColumn = "M"
)

func rowForApp(app *models.App) []interface{} {
	return []interface{}{
		strconv.FormatUint(uint64(app.ID), 10),
		app.Name,
		app.Category,
		app.Description,
		app.IconURL,
		app.WebsiteURL,
		app.AndroidURL,
		app.IOSURL,
		app.SolanaMobileURL,
		app.ProjectTwitter,
		app.SubmitterTwitter,
		app.ContractAddress,
		yesNo(app.IsShown),
		app.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func appFromRow(row []interface{}) models.App {
	id, _ := strconv.ParseUint(cell(row, 0), 10, 64)
	createdAt, _ := time.Parse(time.RFC3339, cell(row, 13))
	return models.App{
		ID:               uint(id),
		Name:             cell(row, 1),
		Category:         cell(row, 2),
		Description:      cell(row, 3),
		IconURL:          cell(row, 4),
		WebsiteURL:       cell(row, 5),
		AndroidURL:       cell(row, 6),
		IOSURL:           cell(row, 7),
		SolanaMobileURL:  cell(row, 8),
		ProjectTwitter:   cell(row, 9),
		SubmitterTwitter: cell(row, 10),
		ContractAddress:  cell(row, 11),
		IsShown:          cell(row, 12) == "Yes",
		CreatedAt:        createdAt,
	}
}

// cell returns column i of a row as a string; sheet rows are ragged, so a
// short row reads as empty cells.
func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
