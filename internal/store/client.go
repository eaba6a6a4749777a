// Package store talks to the remote application store over HTTP.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/job-carousel/internal/dtos"
	"github.com/justsurfingit/job-carousel/internal/metrics"
	"github.com/justsurfingit/job-carousel/internal/models"
)

var (
	// ErrStoreUnavailable covers transport failures and any non-2xx status.
	ErrStoreUnavailable = errors.New("remote store unavailable")
	// ErrInvalidResponse is a 2xx answer whose body cannot be used.
	ErrInvalidResponse = errors.New("remote store returned an invalid response")
)

const maxBodyBytes = 8 << 20

// Client issues one round trip per call against a single endpoint. It never retries.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        logrus.FieldLogger
}

type Option func(*Client)

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) { c.log = log }
}

// WithTimeout bounds each call. Zero leaves calls unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient = &http.Client{Timeout: d} }
}

func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{},
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll loads every application held by the store.
func (c *Client) FetchAll(ctx context.Context) ([]models.Application, error) {
	body, err := c.do(ctx, "fetch", http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	apps, err := models.ParseApplications(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return apps, nil
}

// Create posts a new application and returns the record the store assigned.
func (c *Client) Create(ctx context.Context, req dtos.ApplicationRequest) (models.Application, error) {
	body, err := c.do(ctx, "create", http.MethodPost, c.endpoint, req)
	if err != nil {
		return models.Application{}, err
	}
	return parseRecord(body)
}

// Update replaces the application stored under id.
func (c *Client) Update(ctx context.Context, id string, req dtos.ApplicationRequest) (models.Application, error) {
	body, err := c.do(ctx, "update", http.MethodPut, c.recordURL(id), req)
	if err != nil {
		return models.Application{}, err
	}
	app, err := parseRecord(body)
	if errors.Is(err, ErrInvalidResponse) && len(bytes.TrimSpace(body)) == 0 {
		// Some stores answer updates with an empty 2xx body.
		return fromRequest(id, req), nil
	}
	return app, err
}

// Delete removes the application stored under id.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, "delete", http.MethodDelete, c.recordURL(id), nil)
	return err
}

func (c *Client) recordURL(id string) string {
	return c.endpoint + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, op, method, target string, payload any) (_ []byte, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveStoreCall(op, err, time.Since(start))
		entry := c.log.WithFields(logrus.Fields{
			"op":       op,
			"method":   method,
			"duration": time.Since(start).String(),
		})
		if err != nil {
			entry.WithError(err).Warn("store call failed")
		} else {
			entry.Debug("store call ok")
		}
	}()

	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal %s request: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: %s: HTTP %d", ErrStoreUnavailable, op, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s response: %v", ErrStoreUnavailable, op, err)
	}
	return body, nil
}

func parseRecord(body []byte) (models.Application, error) {
	app, err := models.ParseApplication(body)
	if err != nil {
		return models.Application{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return app, nil
}

func fromRequest(id string, req dtos.ApplicationRequest) models.Application {
	return models.Application{
		ApplicationID:     id,
		CompanyName:       req.CompanyName,
		JobTitle:          req.JobTitle,
		ApplicationStatus: req.ApplicationStatus,
		ApplicationSource: req.ApplicationSource,
		DateApplied:       req.DateApplied,
		Location:          req.Location,
		SalaryRange:       req.SalaryRange,
		ActionToTake:      req.ActionToTake,
		Notes:             req.Notes,
	}
}
