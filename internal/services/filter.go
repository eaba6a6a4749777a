package services

import "github.com/justsurfingit/job-carousel/internal/models"

// FilterApplications keeps the records whose effective status equals status.
// "all" (or an empty key) returns the list unchanged. Relative order is preserved.
func FilterApplications(apps []models.Application, status string) []models.Application {
	if status == "" || status == models.FilterAll {
		return apps
	}
	filtered := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		if app.EffectiveStatus() == status {
			filtered = append(filtered, app)
		}
	}
	return filtered
}
