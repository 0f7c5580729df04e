package web

import (
	"embed"
	"html/template"

	"resume-dashboard/internal/dashboard"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"toggle": dashboard.ToggleExpanded,
}

// Templates parses the embedded page templates ("upload" and "dashboard").
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.tmpl")
}

// MustTemplates is Templates for process startup.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
