package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/job-carousel/internal/dtos"
	"github.com/justsurfingit/job-carousel/internal/metrics"
	"github.com/justsurfingit/job-carousel/internal/models"
)

var ErrNotFound = errors.New("application not found")

// ApplicationStore is the remote collaborator holding the records.
type ApplicationStore interface {
	FetchAll(ctx context.Context) ([]models.Application, error)
	Create(ctx context.Context, req dtos.ApplicationRequest) (models.Application, error)
	Update(ctx context.Context, id string, req dtos.ApplicationRequest) (models.Application, error)
	Delete(ctx context.Context, id string) error
}

const (
	msgLoadFailed     = "Failed to load applications. Please check your connection."
	msgRequiredFields = "Please fill in all required fields."
	msgAdded          = "Application added successfully!"
	msgAddFailed      = "Failed to add application. Please try again."
	msgUpdated        = "Application updated successfully!"
	msgUpdateFailed   = "Failed to update application. Please try again."
	msgDeleted        = "Application deleted successfully!"
	msgDeleteFailed   = "Failed to delete application. Please try again."
	msgExtractOff     = "Posting extraction is not configured."
	msgExtractFailed  = "Could not read details from that posting."
	msgExtracted      = "Form filled from the posting. Review it before saving."
)

// TrackerService owns the in-memory application list and everything derived from it.
// Store calls run outside the lock so reads stay responsive while a call is in flight.
type TrackerService struct {
	store     ApplicationStore
	extractor DraftExtractor
	notifier  *Notifier
	log       logrus.FieldLogger
	now       func() time.Time

	refreshing atomic.Bool

	mu         sync.Mutex
	apps       []models.Application
	filter     string
	carousel   *Carousel
	attempted  bool
	loaded     bool
	loadFailed bool
	submitting bool
	draft      dtos.ApplicationForm
	editingID  string
}

type TrackerOptions struct {
	Extractor     DraftExtractor
	Notifier      *Notifier
	Logger        logrus.FieldLogger
	Now           func() time.Time
	ViewportWidth int
}

func NewTrackerService(store ApplicationStore, opts TrackerOptions) *TrackerService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Notifier == nil {
		opts.Notifier = NewNotifier(DefaultNotificationTTL, opts.Now)
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.ViewportWidth <= 0 {
		opts.ViewportWidth = 1
	}
	return &TrackerService{
		store:     store,
		extractor: opts.Extractor,
		notifier:  opts.Notifier,
		log:       opts.Logger,
		now:       opts.Now,
		filter:    models.FilterAll,
		carousel:  NewCarousel(PageSizeForWidth(opts.ViewportWidth)),
		draft:     BlankForm(opts.Now()),
	}
}

// Refresh reloads the full list. A call made while another refresh is running is a no-op.
// On failure the list is left as it was and the error state is raised.
func (s *TrackerService) Refresh(ctx context.Context) error {
	if !s.refreshing.CompareAndSwap(false, true) {
		s.log.Debug("refresh already in flight, skipping")
		return nil
	}
	defer s.refreshing.Store(false)

	s.mu.Lock()
	s.attempted = true
	s.loadFailed = false
	s.mu.Unlock()

	apps, err := s.store.FetchAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.loadFailed = true
		s.notifier.Error(msgLoadFailed)
		s.log.WithError(err).Error("❌ fetching applications failed")
		return fmt.Errorf("fetch applications: %w", err)
	}

	s.apps = apps
	s.loaded = true
	s.syncLocked()
	s.log.WithField("count", len(apps)).Info("✅ applications loaded")
	return nil
}

// EnsureLoaded performs the first refresh if none was attempted yet.
func (s *TrackerService) EnsureLoaded(ctx context.Context) error {
	s.mu.Lock()
	attempted := s.attempted
	s.mu.Unlock()
	if attempted {
		return nil
	}
	return s.Refresh(ctx)
}

// Submit validates the form and creates (or, while editing, updates) the record.
// Nothing reaches the store when validation fails.
func (s *TrackerService) Submit(ctx context.Context, form dtos.ApplicationForm) (models.Application, error) {
	if err := ValidateForm(form); err != nil {
		s.mu.Lock()
		s.draft = form
		s.mu.Unlock()
		s.notifier.Error(msgRequiredFields)
		return models.Application{}, err
	}

	s.mu.Lock()
	s.submitting = true
	s.draft = form
	editingID := s.editingID
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	req := MapForm(form, s.now())
	if editingID != "" {
		return s.update(ctx, editingID, req)
	}

	created, err := s.store.Create(ctx, req)
	if err != nil {
		s.notifier.Error(msgAddFailed)
		s.log.WithError(err).WithField("company", req.CompanyName).Error("❌ creating application failed")
		return models.Application{}, fmt.Errorf("create application: %w", err)
	}

	s.mu.Lock()
	s.apps = append([]models.Application{created}, s.apps...)
	s.loaded = true
	s.draft = BlankForm(s.now())
	s.syncLocked()
	s.mu.Unlock()

	s.notifier.Success(msgAdded)
	s.log.WithFields(logrus.Fields{"id": created.ApplicationID, "company": created.CompanyName}).Info("📥 application added")
	return created, nil
}

func (s *TrackerService) update(ctx context.Context, id string, req dtos.ApplicationRequest) (models.Application, error) {
	updated, err := s.store.Update(ctx, id, req)
	if err != nil {
		s.notifier.Error(msgUpdateFailed)
		s.log.WithError(err).WithField("id", id).Error("❌ updating application failed")
		return models.Application{}, fmt.Errorf("update application: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 {
		if updated.CreatedAt == "" {
			updated.CreatedAt = s.apps[i].CreatedAt
		}
		s.apps[i] = updated
	}
	s.editingID = ""
	s.draft = BlankForm(s.now())
	s.syncLocked()
	s.notifier.Success(msgUpdated)
	s.log.WithField("id", id).Info("✏️ application updated")
	return updated, nil
}

// Delete removes the record from the store and, once that succeeds, from memory.
func (s *TrackerService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	found := s.indexLocked(id) >= 0
	s.mu.Unlock()
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		s.notifier.Error(msgDeleteFailed)
		s.log.WithError(err).WithField("id", id).Error("❌ deleting application failed")
		return fmt.Errorf("delete application: %w", err)
	}

	s.mu.Lock()
	if i := s.indexLocked(id); i >= 0 {
		s.apps = append(s.apps[:i:i], s.apps[i+1:]...)
	}
	if s.editingID == id {
		s.editingID = ""
		s.draft = BlankForm(s.now())
	}
	s.syncLocked()
	s.mu.Unlock()

	s.notifier.Success(msgDeleted)
	s.log.WithField("id", id).Info("🗑️ application deleted")
	return nil
}

// Edit loads a record into the form. The next Submit updates it instead of creating.
func (s *TrackerService) Edit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.editingID = id
	s.draft = FormFromApplication(s.apps[i])
	return nil
}

func (s *TrackerService) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = ""
	s.draft = BlankForm(s.now())
}

// ExtractDraft fills the form from a pasted job posting. Fields the model could not
// find keep their current values.
func (s *TrackerService) ExtractDraft(ctx context.Context, rawHTML string) error {
	if s.extractor == nil {
		s.notifier.Info(msgExtractOff)
		return ErrExtractorDisabled
	}

	extracted, err := s.extractor.ExtractDraft(ctx, rawHTML)
	if err != nil {
		if errors.Is(err, ErrExtractorDisabled) {
			s.notifier.Info(msgExtractOff)
		} else {
			s.notifier.Error(msgExtractFailed)
			s.log.WithError(err).Warn("posting extraction failed")
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.CompanyName = orDefault(strings.TrimSpace(extracted.CompanyName), s.draft.CompanyName)
	s.draft.Role = orDefault(strings.TrimSpace(extracted.Role), s.draft.Role)
	s.draft.Location = orDefault(strings.TrimSpace(extracted.Location), s.draft.Location)
	s.draft.SalaryRange = orDefault(strings.TrimSpace(extracted.SalaryRange), s.draft.SalaryRange)
	s.draft.Notes = orDefault(strings.TrimSpace(extracted.Notes), s.draft.Notes)
	s.notifier.Success(msgExtracted)
	return nil
}

// SetFilter switches the status filter. An empty key means "all".
func (s *TrackerService) SetFilter(status string) {
	status = strings.TrimSpace(status)
	if status == "" {
		status = models.FilterAll
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = status
	s.syncLocked()
}

func (s *TrackerService) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carousel.Next()
}

func (s *TrackerService) Prev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carousel.Prev()
}

func (s *TrackerService) GoTo(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carousel.GoTo(i)
}

func (s *TrackerService) Swipe(startX, endX float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carousel.Swipe(startX, endX)
}

// SetViewportWidth recomputes the page size for a new viewport.
func (s *TrackerService) SetViewportWidth(width int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carousel.SetPageSize(PageSizeForWidth(width))
}

// Applications returns a copy of the filtered list.
func (s *TrackerService) Applications() []models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := FilterApplications(s.apps, s.filter)
	out := make([]models.Application, len(filtered))
	copy(out, filtered)
	return out
}

// View projects the current state into a PageView.
func (s *TrackerService) View() PageView {
	notifications := s.notifier.Active()

	s.mu.Lock()
	st := viewState{
		apps:             append([]models.Application(nil), s.apps...),
		filter:           s.filter,
		carousel:         *s.carousel,
		loading:          s.refreshing.Load(),
		loaded:           s.loaded,
		loadFailed:       s.loadFailed,
		submitting:       s.submitting,
		draft:            s.draft,
		editingID:        s.editingID,
		extractorEnabled: s.extractor != nil,
		notifications:    notifications,
	}
	s.mu.Unlock()

	return buildPageView(st)
}

func (s *TrackerService) Notifier() *Notifier { return s.notifier }

func (s *TrackerService) indexLocked(id string) int {
	for i, app := range s.apps {
		if app.ApplicationID == id {
			return i
		}
	}
	return -1
}

// syncLocked re-clamps the carousel after the list or filter changed.
func (s *TrackerService) syncLocked() {
	s.carousel.Resize(len(FilterApplications(s.apps, s.filter)))
	metrics.SetApplications(len(s.apps))
}
