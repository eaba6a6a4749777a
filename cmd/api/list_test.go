package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-carousel/internal/models"
)

func runTracker(t *testing.T, endpoint string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STORE_ENDPOINT", endpoint)
	t.Cleanup(func() {
		listJSON = false
		listStatus = models.FilterAll
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--env-file", "testdata/missing.env"))
	err := rootCmd.Execute()
	return out.String(), err
}

func newStoreServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

const storeBody = `[
	{"applicationId": 1, "CompanyName": "Acme", "jobTitle": "SRE", "applicationStatus": "Applied", "dateApplied": "2026-10-01"},
	{"applicationId": "2", "companyName": "Globex", "role": "QA", "status": "Rejected"}
]`

func TestList_JSONWithStatusFilter(t *testing.T) {
	server := newStoreServer(t, http.StatusOK, storeBody)

	out, err := runTracker(t, server.URL, "list", "--json", "--status", "Rejected")
	require.NoError(t, err)

	var apps []models.Application
	require.NoError(t, json.Unmarshal([]byte(out), &apps))
	require.Len(t, apps, 1)
	assert.Equal(t, "2", apps[0].ApplicationID)
	assert.Equal(t, "Globex", apps[0].CompanyName)
	assert.Equal(t, "QA", apps[0].JobTitle)
}

func TestList_Table(t *testing.T) {
	server := newStoreServer(t, http.StatusOK, storeBody)

	out, err := runTracker(t, server.URL, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "COMPANY")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Oct 1, 2026")
	assert.Contains(t, out, "Globex")
}

func TestList_Empty(t *testing.T) {
	server := newStoreServer(t, http.StatusOK, `[]`)

	out, err := runTracker(t, server.URL, "list")
	require.NoError(t, err)
	assert.Equal(t, "No applications found.\n", out)
}

func TestList_StoreFailure(t *testing.T) {
	server := newStoreServer(t, http.StatusInternalServerError, `boom`)

	_, err := runTracker(t, server.URL, "list", "--json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fetch applications")
}
