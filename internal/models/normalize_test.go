package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseApplications_LegacyFields(t *testing.T) {
	body := []byte(`[
		{"applicationId": "a1", "CompanyName": "Stripe", "jobTitle": "Backend", "applicationStatus": "Hired"},
		{"applicationId": 42, "companyName": "Acme", "role": "SRE", "status": "Ghosted", "createdAt": 1700000000000}
	]`)

	apps, err := ParseApplications(body)
	require.NoError(t, err)
	require.Len(t, apps, 2)

	assert.Equal(t, "a1", apps[0].ApplicationID)
	assert.Equal(t, "Stripe", apps[0].CompanyName)
	assert.Equal(t, "Hired", apps[0].EffectiveStatus())

	assert.Equal(t, "42", apps[1].ApplicationID)
	assert.Equal(t, "Acme", apps[1].CompanyName)
	assert.Equal(t, "SRE", apps[1].JobTitle)
	assert.Equal(t, "Ghosted", apps[1].EffectiveStatus())
	assert.Equal(t, "1700000000000", apps[1].CreatedAt)
}

func TestParseApplications_NewFieldWins(t *testing.T) {
	apps, err := ParseApplications([]byte(`[{"applicationStatus": "Rejected", "status": "Applied"}]`))
	require.NoError(t, err)
	assert.Equal(t, "Rejected", apps[0].EffectiveStatus())

	apps, err = ParseApplications([]byte(`[{"applicationStatus": "", "status": "Applied"}]`))
	require.NoError(t, err)
	assert.Equal(t, "Applied", apps[0].EffectiveStatus())
}

func TestParseApplications_NullIsEmpty(t *testing.T) {
	apps, err := ParseApplications([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.NotNil(t, apps)
}

func TestParseApplications_Errors(t *testing.T) {
	_, err := ParseApplications([]byte(`{"message": "Internal"}`))
	assert.ErrorIs(t, err, ErrNotArray)

	_, err = ParseApplications([]byte(`<html>`))
	assert.ErrorIs(t, err, ErrNotJSON)
}

func TestParseApplication(t *testing.T) {
	app, err := ParseApplication([]byte(`{"applicationId": "x9", "CompanyName": "Globex"}`))
	require.NoError(t, err)
	assert.Equal(t, "x9", app.ApplicationID)
	assert.Equal(t, "Globex", app.CompanyName)

	_, err = ParseApplication([]byte(`{"CompanyName": "Globex"}`))
	assert.ErrorIs(t, err, ErrMissingID)

	_, err = ParseApplication([]byte(`[]`))
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestStatusClass(t *testing.T) {
	cases := map[string]string{
		"Applied":             "status-applied",
		"Interview Scheduled": "status-interview",
		"Interview Completed": "status-interview-completed",
		"Awaiting Offer":      "status-awaiting",
		"Offer Received":      "status-offer",
		"Hired":               "status-hired",
		"Rejected":            "status-rejected",
		"Ghosted":             "status-ghosted",
		"Withdrawn":           "status-withdrawn",
		"Freelance":           "status-custom",
		"":                    "status-custom",
	}
	for status, want := range cases {
		assert.Equal(t, want, StatusClass(status), status)
	}
	assert.Len(t, KnownStatuses, 9)
}
