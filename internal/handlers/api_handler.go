package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-carousel/internal/dtos"
	"github.com/justsurfingit/job-carousel/internal/services"
	"github.com/justsurfingit/job-carousel/internal/store"
)

// APIHandler exposes the same operations as JSON. Every success answers with the
// resulting page view.
type APIHandler struct {
	Tracker *services.TrackerService
}

func NewAPIHandler(tracker *services.TrackerService) *APIHandler {
	return &APIHandler{Tracker: tracker}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *APIHandler) State(c *gin.Context) {
	if err := h.Tracker.EnsureLoaded(c.Request.Context()); err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusOK, h.Tracker.View())
}

func (h *APIHandler) Refresh(c *gin.Context) {
	if err := h.Tracker.Refresh(c.Request.Context()); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to load applications: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Tracker.View())
}

func (h *APIHandler) CreateApplication(c *gin.Context) {
	var form dtos.ApplicationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Tracker.Submit(c.Request.Context(), form)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to save application: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *APIHandler) DeleteApplication(c *gin.Context) {
	if err := h.Tracker.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to delete application: " + err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *APIHandler) DismissNotification(c *gin.Context) {
	h.Tracker.Notifier().Dismiss(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *APIHandler) Filter(c *gin.Context) {
	var req dtos.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	h.Tracker.SetFilter(req.Status)
	c.JSON(http.StatusOK, h.Tracker.View())
}

// Carousel is POST /carousel/:action with action next, prev, goto or swipe.
func (h *APIHandler) Carousel(c *gin.Context) {
	switch c.Param("action") {
	case "next":
		h.Tracker.Next()
	case "prev":
		h.Tracker.Prev()
	case "goto":
		var req dtos.GoToRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
			return
		}
		h.Tracker.GoTo(req.Index)
	case "swipe":
		var req dtos.SwipeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
			return
		}
		h.Tracker.Swipe(req.StartX, req.EndX)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown carousel action"})
		return
	}
	c.JSON(http.StatusOK, h.Tracker.View().Carousel)
}

func (h *APIHandler) Viewport(c *gin.Context) {
	var req dtos.ViewportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	h.Tracker.SetViewportWidth(req.Width)
	c.JSON(http.StatusOK, h.Tracker.View().Carousel)
}

func (h *APIHandler) Extract(c *gin.Context) {
	var req dtos.PostingExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Tracker.ExtractDraft(c.Request.Context(), req.RawHTML); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "AI Extraction failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Tracker.View().Form)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrExtractorDisabled):
		return http.StatusNotImplemented
	case errors.Is(err, store.ErrStoreUnavailable), errors.Is(err, store.ErrInvalidResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
