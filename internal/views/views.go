// Package views renders the HTML pages of the dashboard from templates
// embedded into the binary.
package views

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/MKhiriev/go-weather-dashboard/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names accepted by [Renderer.Render].
const (
	PageIndex     = "index"
	PageRegister  = "register"
	PageLogin     = "login"
	PageDashboard = "dashboard"
	PageHistory   = "history"
	PageProfile   = "profile"
)

var pages = []string{PageIndex, PageRegister, PageLogin, PageDashboard, PageHistory, PageProfile}

var ErrUnknownPage = errors.New("unknown page")

// Flash levels, named after the alert styles of the layout.
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// PageData is passed to every template. Username is empty for anonymous
// visitors.
type PageData struct {
	Username string
	Flashes  []Flash
	Data     any
}

type DashboardData struct {
	User   models.User
	Report models.WeatherReport
	Units  models.Units
}

type HistoryData struct {
	Queries []models.WeatherQuery
}

type ProfileData struct {
	Profile models.Profile
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses all embedded templates.
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}

	for _, page := range pages {
		tmpl, err := template.New(page).
			Funcs(funcs).
			ParseFS(templatesFS, "templates/base.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("error parsing template %s: %w", page, err)
		}
		r.templates[page] = tmpl
	}

	return r, nil
}

// Render executes page into w. Nothing is written when execution fails.
func (r *Renderer) Render(w io.Writer, page string, data PageData) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("error rendering page %s: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

var funcs = template.FuncMap{
	"formatTime": formatTime,
	"iconURL":    iconURL,
	"tempUnit":   tempUnit,
	"speedUnit":  speedUnit,
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func iconURL(icon string) string {
	return "https://openweathermap.org/img/wn/" + icon + "@2x.png"
}

func tempUnit(units models.Units) string {
	if units == models.UnitsImperial {
		return "°F"
	}
	return "°C"
}

func speedUnit(units models.Units) string {
	if units == models.UnitsImperial {
		return "mph"
	}
	return "m/s"
}
