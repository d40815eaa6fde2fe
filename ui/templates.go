package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"
)

// renderTemplate executes a template with the given data, rendering to
// a buffer first so template errors never produce a half-written page.
func (a *App) renderTemplate(w http.ResponseWriter, status int, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		a.logger.Error("template error for %s: %v", templateName, err)
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		a.logger.Error("error writing template response: %v", err)
	}
}

// templateFuncs are the helpers the dashboard templates use.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		// comma formats counts the way the source extracts group them,
		// e.g. 9741383 -> "9,741,383".
		"comma": func(n int) string {
			s := fmt.Sprintf("%d", n)
			if n < 0 {
				return s
			}
			var parts []string
			for len(s) > 3 {
				parts = append([]string{s[len(s)-3:]}, parts...)
				s = s[:len(s)-3]
			}
			parts = append([]string{s}, parts...)
			return strings.Join(parts, ",")
		},
		"printf1": func(v float64) string {
			return fmt.Sprintf("%.1f", v)
		},
	}
}
