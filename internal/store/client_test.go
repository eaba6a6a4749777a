package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-carousel/internal/dtos"
	"github.com/justsurfingit/job-carousel/internal/logging"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/test/applications", WithLogger(logging.Discard()))
}

func TestClient_FetchAll(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/test/applications", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"applicationId":"1","CompanyName":"Stripe","status":"Applied"}]`))
	})

	apps, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Stripe", apps[0].CompanyName)
	assert.Equal(t, "Applied", apps[0].EffectiveStatus())
}

func TestClient_FetchAll_ServerError(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	apps, err := c.FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, apps)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no retries")
}

func TestClient_FetchAll_ClientErrorIsSameKind(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestClient_FetchAll_InvalidBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errorMessage":"nope"}`))
	})

	_, err := c.FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_FetchAll_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := NewClient(url, WithLogger(logging.Discard()))
	_, err := c.FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestClient_Create(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Globex", body["CompanyName"])
		assert.Equal(t, "Engineer", body["jobTitle"])
		assert.Equal(t, "Freelance", body["applicationStatus"])
		for _, key := range []string{"applicationSource", "dateApplied", "location", "salaryRange", "actionToTake", "notes"} {
			assert.Contains(t, body, key)
		}

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"applicationId":"new-1","CompanyName":"Globex","jobTitle":"Engineer","applicationStatus":"Freelance","createdAt":"2026-10-18T10:00:00Z"}`))
	})

	app, err := c.Create(context.Background(), dtos.ApplicationRequest{
		CompanyName:       "Globex",
		JobTitle:          "Engineer",
		ApplicationStatus: "Freelance",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-1", app.ApplicationID)
	assert.Equal(t, "2026-10-18T10:00:00Z", app.CreatedAt)
}

func TestClient_Create_MissingID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"CompanyName":"Globex"}`))
	})

	_, err := c.Create(context.Background(), dtos.ApplicationRequest{CompanyName: "Globex", JobTitle: "x"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_UpdateAndDelete(t *testing.T) {
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.EscapedPath())
		switch r.Method {
		case http.MethodPut:
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	app, err := c.Update(context.Background(), "id 7", dtos.ApplicationRequest{CompanyName: "Initech", JobTitle: "QA"})
	require.NoError(t, err)
	assert.Equal(t, "id 7", app.ApplicationID)
	assert.Equal(t, "Initech", app.CompanyName)

	require.NoError(t, c.Delete(context.Background(), "id 7"))
	assert.Equal(t, []string{
		"PUT /test/applications/id%207",
		"DELETE /test/applications/id%207",
	}, seen)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, WithTimeout(20*time.Millisecond), WithLogger(logging.Discard()))
	_, err := c.FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
