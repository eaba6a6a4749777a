package services

import (
	"github.com/justsurfingit/job-carousel/internal/dtos"
	"github.com/justsurfingit/job-carousel/internal/models"
)

// PageView is everything the page shows, derived from tracker state.
// The HTML template and the JSON API both render it.
type PageView struct {
	Count         int            `json:"count"`
	Filter        string         `json:"filter"`
	Filters       []FilterButton `json:"filters"`
	Loading       bool           `json:"loading"`
	LoadFailed    bool           `json:"loadFailed"`
	Empty         bool           `json:"empty"`
	FilterEmpty   bool           `json:"filterEmpty"`
	Cards         []CardView     `json:"cards"`
	Carousel      CarouselView   `json:"carousel"`
	Form          FormView       `json:"form"`
	Notifications []Notification `json:"notifications"`
}

type FilterButton struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type CarouselView struct {
	Index          int   `json:"index"`
	PageSize       int   `json:"pageSize"`
	TotalPages     int   `json:"totalPages"`
	FilteredCount  int   `json:"filteredCount"`
	ShowNavigation bool  `json:"showNavigation"`
	PrevDisabled   bool  `json:"prevDisabled"`
	NextDisabled   bool  `json:"nextDisabled"`
	Dots           []Dot `json:"dots,omitempty"`
	// SwipeThreshold lets the page skip posting taps and short drags.
	SwipeThreshold float64 `json:"swipeThreshold"`
}

type Dot struct {
	Index  int  `json:"index"`
	Active bool `json:"active"`
}

type FormView struct {
	Values           dtos.ApplicationForm `json:"values"`
	Submitting       bool                 `json:"submitting"`
	EditingID        string               `json:"editingId,omitempty"`
	ShowCustomStatus bool                 `json:"showCustomStatus"`
	ShowCustomSource bool                 `json:"showCustomSource"`
	Statuses         []string             `json:"statuses"`
	Sources          []string             `json:"sources"`
	ExtractorEnabled bool                 `json:"extractorEnabled"`
}

// viewState is a consistent snapshot of tracker state.
type viewState struct {
	apps             []models.Application
	filter           string
	carousel         Carousel
	loading          bool
	loaded           bool
	loadFailed       bool
	submitting       bool
	draft            dtos.ApplicationForm
	editingID        string
	extractorEnabled bool
	notifications    []Notification
}

// buildPageView is a pure projection of a snapshot.
func buildPageView(st viewState) PageView {
	filtered := FilterApplications(st.apps, st.filter)
	carousel := st.carousel
	carousel.Resize(len(filtered))
	start, end := carousel.Window()

	view := PageView{
		Count:         len(st.apps),
		Filter:        st.filter,
		Filters:       filterButtons(st.filter),
		Loading:       st.loading,
		LoadFailed:    st.loadFailed,
		Empty:         st.loaded && !st.loadFailed && len(st.apps) == 0,
		FilterEmpty:   len(st.apps) > 0 && len(filtered) == 0,
		Cards:         RenderCards(filtered[start:end]),
		Carousel:      carouselView(&carousel, len(filtered)),
		Notifications: st.notifications,
		Form: FormView{
			Values:           st.draft,
			Submitting:       st.submitting,
			EditingID:        st.editingID,
			ShowCustomStatus: st.draft.Status == models.OptionOther,
			ShowCustomSource: st.draft.ApplicationSource == models.OptionOther,
			Statuses:         models.KnownStatuses,
			Sources:          models.KnownSources,
			ExtractorEnabled: st.extractorEnabled,
		},
	}
	if view.Notifications == nil {
		view.Notifications = []Notification{}
	}
	return view
}

func filterButtons(active string) []FilterButton {
	buttons := make([]FilterButton, 0, len(models.KnownStatuses)+2)
	buttons = append(buttons, FilterButton{Key: models.FilterAll, Label: "All", Active: active == models.FilterAll})
	known := false
	for _, status := range models.KnownStatuses {
		buttons = append(buttons, FilterButton{Key: status, Label: status, Active: active == status})
		known = known || active == status
	}
	if !known && active != models.FilterAll {
		buttons = append(buttons, FilterButton{Key: active, Label: active, Active: true})
	}
	return buttons
}

func carouselView(c *Carousel, filteredCount int) CarouselView {
	cv := CarouselView{
		Index:          c.Index(),
		PageSize:       c.PageSize(),
		TotalPages:     c.TotalPages(),
		FilteredCount:  filteredCount,
		ShowNavigation: c.ShowNavigation(),
		PrevDisabled:   !c.CanPrev(),
		NextDisabled:   !c.CanNext(),
		SwipeThreshold: SwipeThreshold,
	}
	if cv.ShowNavigation {
		cv.Dots = make([]Dot, cv.TotalPages)
		for i := range cv.Dots {
			cv.Dots[i] = Dot{Index: i, Active: i == cv.Index}
		}
	}
	return cv
}
