package models

// Application is one job-application entry as stored remotely.
// Legacy field names are folded in by Normalize, so every reader sees a single
// field per concept.
type Application struct {
	ApplicationID string `json:"applicationId"`
	CreatedAt     string `json:"createdAt,omitempty"`

	CompanyName       string `json:"companyName"`
	JobTitle          string `json:"jobTitle"`
	ApplicationStatus string `json:"applicationStatus"`

	// Optional Fields
	ApplicationSource string `json:"applicationSource,omitempty"`
	DateApplied       string `json:"dateApplied,omitempty"`
	Location          string `json:"location,omitempty"`
	SalaryRange       string `json:"salaryRange,omitempty"`
	ActionToTake      string `json:"actionToTake,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// EffectiveStatus is the status used for filtering. It may be empty.
func (a Application) EffectiveStatus() string {
	return a.ApplicationStatus
}

const (
	StatusApplied            = "Applied"
	StatusInterviewScheduled = "Interview Scheduled"
	StatusInterviewCompleted = "Interview Completed"
	StatusAwaitingOffer      = "Awaiting Offer"
	StatusOfferReceived      = "Offer Received"
	StatusHired              = "Hired"
	StatusRejected           = "Rejected"
	StatusGhosted            = "Ghosted"
	StatusWithdrawn          = "Withdrawn"

	// OptionOther marks a select whose value comes from a free-text input.
	OptionOther = "Other"

	// FilterAll disables status filtering.
	FilterAll = "all"
)

// KnownStatuses lists the fixed statuses in the order the form and filter bar show them.
var KnownStatuses = []string{
	StatusApplied,
	StatusInterviewScheduled,
	StatusInterviewCompleted,
	StatusAwaitingOffer,
	StatusOfferReceived,
	StatusHired,
	StatusRejected,
	StatusGhosted,
	StatusWithdrawn,
}

var statusClasses = map[string]string{
	StatusApplied:            "status-applied",
	StatusInterviewScheduled: "status-interview",
	StatusInterviewCompleted: "status-interview-completed",
	StatusAwaitingOffer:      "status-awaiting",
	StatusOfferReceived:      "status-offer",
	StatusHired:              "status-hired",
	StatusRejected:           "status-rejected",
	StatusGhosted:            "status-ghosted",
	StatusWithdrawn:          "status-withdrawn",
}

// StatusClass maps a status to its badge class. Custom statuses share one class.
func StatusClass(status string) string {
	if c, ok := statusClasses[status]; ok {
		return c
	}
	return "status-custom"
}

const DefaultSource = "Direct Application"

// KnownSources lists the application sources offered by the form.
var KnownSources = []string{
	DefaultSource,
	"Company Website",
	"LinkedIn",
	"Indeed",
	"Glassdoor",
	"Referral",
	"Recruiter",
	"Job Fair",
}
