// Package views holds the HTML templates that render a services.PageView.
package views

import (
	"embed"
	"html/template"
	"net/url"
	"strings"
)

//go:embed templates/*.tmpl
var files embed.FS

// PageTemplate is the name gin renders for the main page.
const PageTemplate = "index.tmpl"

var funcs = template.FuncMap{
	"selected": func(a, b string) bool { return strings.TrimSpace(a) == strings.TrimSpace(b) },
	// Ids are opaque; escaping keeps "/", "?" and "#" inside one path segment.
	"pathEscape": url.PathEscape,
}

// Load parses every embedded template.
func Load() (*template.Template, error) {
	return template.New("views").Funcs(funcs).ParseFS(files, "templates/*.tmpl")
}
