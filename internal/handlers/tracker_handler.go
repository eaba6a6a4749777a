package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/job-carousel/internal/dtos"
	"github.com/justsurfingit/job-carousel/internal/services"
	"github.com/justsurfingit/job-carousel/internal/views"
)

// TrackerHandler serves the HTML page. Every write redirects back to "/" so a
// browser refresh never repeats it.
type TrackerHandler struct {
	Tracker *services.TrackerService
	Log     logrus.FieldLogger
}

func NewTrackerHandler(tracker *services.TrackerService, log logrus.FieldLogger) *TrackerHandler {
	return &TrackerHandler{Tracker: tracker, Log: log}
}

// Page is GET /. The first visit triggers the initial load.
func (h *TrackerHandler) Page(c *gin.Context) {
	if err := h.Tracker.EnsureLoaded(c.Request.Context()); err != nil {
		// Already reflected in the view as the error state.
		_ = c.Error(err)
	}
	c.HTML(http.StatusOK, views.PageTemplate, h.Tracker.View())
}

func (h *TrackerHandler) Refresh(c *gin.Context) {
	if err := h.Tracker.Refresh(c.Request.Context()); err != nil {
		_ = c.Error(err)
	}
	backToPage(c)
}

func (h *TrackerHandler) Submit(c *gin.Context) {
	var form dtos.ApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Invalid form: "+err.Error())
		return
	}
	if _, err := h.Tracker.Submit(c.Request.Context(), form); err != nil {
		_ = c.Error(err)
	}
	backToPage(c)
}

func (h *TrackerHandler) Edit(c *gin.Context) {
	if err := h.Tracker.Edit(c.Param("id")); err != nil {
		h.notFound(c, err)
		return
	}
	backToPage(c)
}

func (h *TrackerHandler) CancelEdit(c *gin.Context) {
	h.Tracker.CancelEdit()
	backToPage(c)
}

func (h *TrackerHandler) Delete(c *gin.Context) {
	if err := h.Tracker.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.notFound(c, err)
			return
		}
		_ = c.Error(err)
	}
	backToPage(c)
}

func (h *TrackerHandler) Extract(c *gin.Context) {
	var req dtos.PostingExtractionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form: "+err.Error())
		return
	}
	if err := h.Tracker.ExtractDraft(c.Request.Context(), req.RawHTML); err != nil {
		_ = c.Error(err)
	}
	backToPage(c)
}

// Filter is GET /filter?status=... or GET /filter/:status.
func (h *TrackerHandler) Filter(c *gin.Context) {
	status := c.Param("status")
	if status == "" {
		status = c.Query("status")
	}
	h.Tracker.SetFilter(status)
	backToPage(c)
}

func (h *TrackerHandler) Next(c *gin.Context) {
	h.Tracker.Next()
	backToPage(c)
}

func (h *TrackerHandler) Prev(c *gin.Context) {
	h.Tracker.Prev()
	backToPage(c)
}

func (h *TrackerHandler) GoTo(c *gin.Context) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid slide index")
		return
	}
	h.Tracker.GoTo(i)
	backToPage(c)
}

func (h *TrackerHandler) Swipe(c *gin.Context) {
	var req dtos.SwipeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid swipe: "+err.Error())
		return
	}
	h.Tracker.Swipe(req.StartX, req.EndX)
	backToPage(c)
}

func (h *TrackerHandler) Viewport(c *gin.Context) {
	var req dtos.ViewportRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid viewport: "+err.Error())
		return
	}
	h.Tracker.SetViewportWidth(req.Width)
	backToPage(c)
}

// DismissNotification hides a toast before its lifetime runs out.
func (h *TrackerHandler) DismissNotification(c *gin.Context) {
	h.Tracker.Notifier().Dismiss(c.Param("id"))
	backToPage(c)
}

func (h *TrackerHandler) notFound(c *gin.Context, err error) {
	h.Log.WithError(err).Warn("unknown application")
	c.String(http.StatusNotFound, "Application not found")
}

func backToPage(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}
