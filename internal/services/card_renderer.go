package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/justsurfingit/job-carousel/internal/models"
)

// CardView is the display form of one application. Text fields are raw;
// the template layer escapes them on output.
type CardView struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	StatusClass string `json:"statusClass"`
	Location    string `json:"location"`
	Applied     string `json:"applied"`
	Salary      string `json:"salary,omitempty"`
	Source      string `json:"source,omitempty"`
	Action      string `json:"action,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

const displayDateLayout = "Jan 2, 2006"

// RenderCard derives the display values for a record.
func RenderCard(app models.Application) CardView {
	status := orDefault(app.EffectiveStatus(), models.StatusApplied)

	return CardView{
		ID:          app.ApplicationID,
		Company:     orDefault(app.CompanyName, "Unknown Company"),
		Role:        orDefault(app.JobTitle, "Unknown Role"),
		Status:      status,
		StatusClass: models.StatusClass(app.EffectiveStatus()),
		Location:    orDefault(app.Location, "Not specified"),
		Applied:     appliedDate(app),
		Salary:      app.SalaryRange,
		Source:      app.ApplicationSource,
		Action:      app.ActionToTake,
		Notes:       app.Notes,
	}
}

func RenderCards(apps []models.Application) []CardView {
	cards := make([]CardView, len(apps))
	for i, app := range apps {
		cards[i] = RenderCard(app)
	}
	return cards
}

func appliedDate(app models.Application) string {
	if app.DateApplied != "" {
		return formatDate(app.DateApplied)
	}
	if app.CreatedAt != "" {
		return formatDate(app.CreatedAt)
	}
	return "Unknown"
}

// formatDate accepts calendar dates, RFC 3339 stamps and epoch numbers.
// Anything else is shown as typed.
func formatDate(raw string) string {
	if t, ok := parseDate(raw); ok {
		return t.Format(displayDateLayout)
	}
	return strings.TrimSpace(raw)
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{dateLayout, time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
		// Values past 1e11 cannot be seconds within this century, so treat them as millis.
		if n > 1e11 {
			return time.UnixMilli(n).UTC(), true
		}
		return time.Unix(n, 0).UTC(), true
	}
	return time.Time{}, false
}
