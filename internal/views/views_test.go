package views

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefinesPage(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	for _, name := range []string{PageTemplate, "form", "carousel", "card", "notifications"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestCardEscapesText(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "card", map[string]string{
		"ID":          "1",
		"Company":     `<script>alert("x")</script>`,
		"Role":        "Dev",
		"Status":      "Applied",
		"StatusClass": "status-applied",
		"Location":    "Remote",
		"Applied":     "Unknown",
		"Notes":       "<b>hi</b>",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&lt;b&gt;hi&lt;/b&gt;")
}
