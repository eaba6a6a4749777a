package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/justsurfingit/job-carousel/internal/dtos"
	"github.com/justsurfingit/job-carousel/internal/models"
)

var ErrValidation = errors.New("validation failed")

const (
	DefaultActionToTake = "Follow up in 1 week"
	dateLayout          = "2006-01-02"
)

// MapForm turns what the user typed into the body the store expects.
// "Other" selects are replaced by their free-text companion, and blank optional
// fields receive their defaults.
func MapForm(form dtos.ApplicationForm, today time.Time) dtos.ApplicationRequest {
	status := strings.TrimSpace(form.Status)
	if status == models.OptionOther {
		status = strings.TrimSpace(form.CustomStatus)
	} else if status == "" {
		status = models.StatusApplied
	}

	source := strings.TrimSpace(form.ApplicationSource)
	if source == models.OptionOther {
		source = strings.TrimSpace(form.CustomSource)
	}

	return dtos.ApplicationRequest{
		CompanyName:       strings.TrimSpace(form.CompanyName),
		JobTitle:          strings.TrimSpace(form.Role),
		ApplicationStatus: status,
		ApplicationSource: orDefault(source, models.DefaultSource),
		DateApplied:       orDefault(strings.TrimSpace(form.DateApplied), today.Format(dateLayout)),
		Location:          strings.TrimSpace(form.Location),
		SalaryRange:       strings.TrimSpace(form.SalaryRange),
		ActionToTake:      orDefault(strings.TrimSpace(form.ActionToTake), DefaultActionToTake),
		Notes:             strings.TrimSpace(form.Notes),
	}
}

// ValidateForm rejects forms that must not reach the store.
func ValidateForm(form dtos.ApplicationForm) error {
	var missing []string
	if strings.TrimSpace(form.CompanyName) == "" {
		missing = append(missing, "companyName")
	}
	if strings.TrimSpace(form.Role) == "" {
		missing = append(missing, "role")
	}
	if strings.TrimSpace(form.Status) == models.OptionOther && strings.TrimSpace(form.CustomStatus) == "" {
		missing = append(missing, "customStatus")
	}
	if strings.TrimSpace(form.ApplicationSource) == models.OptionOther && strings.TrimSpace(form.CustomSource) == "" {
		missing = append(missing, "customSource")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// BlankForm is the form as first shown: status Applied, date today.
func BlankForm(today time.Time) dtos.ApplicationForm {
	return dtos.ApplicationForm{
		Status:            models.StatusApplied,
		ApplicationSource: models.DefaultSource,
		DateApplied:       today.Format(dateLayout),
	}
}

// FormFromApplication prefills the form for editing an existing record.
func FormFromApplication(app models.Application) dtos.ApplicationForm {
	form := dtos.ApplicationForm{
		CompanyName:       app.CompanyName,
		Role:              app.JobTitle,
		Status:            app.ApplicationStatus,
		ApplicationSource: app.ApplicationSource,
		DateApplied:       app.DateApplied,
		Location:          app.Location,
		SalaryRange:       app.SalaryRange,
		ActionToTake:      app.ActionToTake,
		Notes:             app.Notes,
	}
	if form.Status != "" && !contains(models.KnownStatuses, form.Status) {
		form.CustomStatus = form.Status
		form.Status = models.OptionOther
	}
	if form.ApplicationSource != "" && !contains(models.KnownSources, form.ApplicationSource) {
		form.CustomSource = form.ApplicationSource
		form.ApplicationSource = models.OptionOther
	}
	// The date input only takes YYYY-MM-DD; stamps are cut down to their day.
	if t, ok := parseDate(app.DateApplied); ok {
		form.DateApplied = t.Format(dateLayout)
	}
	return form
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
