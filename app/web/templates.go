package web

import (
	"embed"
	"html/template"
	"strconv"
	"time"

	"github.com/joefazee/travel-explorer/app/bookings"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"add":  func(a, b int) int { return a + b },
	"sub":  func(a, b int) int { return a - b },
	"date": func(t time.Time) string { return bookings.FormatDate(t) },
	"travelers": func(n int) string {
		if n == 1 {
			return "1 Traveler"
		}
		return strconv.Itoa(n) + " Travelers"
	},
}

// ParseTemplates parses the embedded page templates
func ParseTemplates() (*template.Template, error) {
	return template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
