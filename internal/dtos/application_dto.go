package dtos

// ApplicationForm is the raw form as the user filled it in.
// Select fields carry "Other" when the matching Custom* input holds the value.
type ApplicationForm struct {
	CompanyName       string `form:"companyName" json:"companyName"`
	Role              string `form:"role" json:"role"`
	Status            string `form:"status" json:"status"`
	CustomStatus      string `form:"customStatus" json:"customStatus"`
	ApplicationSource string `form:"applicationSource" json:"applicationSource"`
	CustomSource      string `form:"customSource" json:"customSource"`
	DateApplied       string `form:"dateApplied" json:"dateApplied"`
	Location          string `form:"location" json:"location"`
	SalaryRange       string `form:"salaryRange" json:"salaryRange"`
	ActionToTake      string `form:"actionToTake" json:"actionToTake"`
	Notes             string `form:"notes" json:"notes"`
}

// ApplicationRequest is the body sent to the remote store on create and update.
// The store expects the capitalised CompanyName key.
type ApplicationRequest struct {
	CompanyName       string `json:"CompanyName"`
	JobTitle          string `json:"jobTitle"`
	ApplicationSource string `json:"applicationSource"`
	ApplicationStatus string `json:"applicationStatus"`
	DateApplied       string `json:"dateApplied"`
	Location          string `json:"location"`
	SalaryRange       string `json:"salaryRange"`
	ActionToTake      string `json:"actionToTake"`
	Notes             string `json:"notes"`
}

type PostingExtractionRequest struct {
	RawHTML string `form:"rawHTML" json:"raw_html" binding:"required"`
}

type FilterRequest struct {
	Status string `form:"status" json:"status"`
}

type ViewportRequest struct {
	Width int `form:"width" json:"width" binding:"required,min=1"`
}

type SwipeRequest struct {
	StartX float64 `form:"startX" json:"startX"`
	EndX   float64 `form:"endX" json:"endX"`
}

type GoToRequest struct {
	Index int `form:"index" json:"index"`
}
