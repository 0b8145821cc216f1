// handlers/template.go - Embedded templates and helpers
package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/lucasmtn/obratrack/internal/models"
	"github.com/lucasmtn/obratrack/internal/progress"
	"github.com/lucasmtn/obratrack/internal/site"
)

//go:embed templates/*.html
var templateFS embed.FS

// formatTime renders time.Time or *time.Time values; zero and nil
// render as a dash.
func formatTime(v any, layout string) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return "-"
		}
		return t.Format(layout)
	case *time.Time:
		if t == nil || t.IsZero() {
			return "-"
		}
		return t.Format(layout)
	}
	return "-"
}

type templateSet struct {
	root *template.Template
}

func parseTemplates() (*templateSet, error) {
	root, err := template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &templateSet{root: root}, nil
}

func (t *templateSet) render(w io.Writer, name string, data any) error {
	return t.root.ExecuteTemplate(w, name, data)
}

// templateFuncs returns the helper functions available to templates
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"date":       func(v any) string { return formatTime(v, "02/01/2006") },
		"datetime":   func(v any) string { return formatTime(v, "02/01/2006 15:04") },
		"blocks":     site.Blocks,
		"apartments": site.ApartmentNumbers,
		"until": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
		// serviceName tolerates *int64 scope filters as well as plain IDs
		"serviceName": func(names map[int64]string, id any) string {
			switch v := id.(type) {
			case int64:
				return names[v]
			case *int64:
				if v != nil {
					return names[*v]
				}
			}
			return ""
		},
		"abs": func(n int) int {
			if n < 0 {
				return -n
			}
			return n
		},
		"statusClass": func(c progress.Color) string {
			switch c {
			case progress.ColorCritical:
				return "badge-red"
			case progress.ColorWarning:
				return "badge-yellow"
			case progress.ColorInfo:
				return "badge-blue"
			default:
				return "badge-green"
			}
		},
		"demandBadge": func(s models.DemandStatus) string {
			if s == models.DemandResolved {
				return "badge-green"
			}
			return "badge-yellow"
		},
		"stars": func(avg float64) string {
			full := int(avg + 0.5)
			if full < 0 {
				full = 0
			}
			if full > 5 {
				full = 5
			}
			out := ""
			for i := 0; i < 5; i++ {
				if i < full {
					out += "★"
				} else {
					out += "☆"
				}
			}
			return out
		},
	}
}
