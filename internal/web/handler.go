// Package web renders the marketing site and the admin submissions page.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/wolfman30/cashoffer-leads/internal/submissions"
	"github.com/wolfman30/cashoffer-leads/pkg/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

// Config holds page-level settings.
type Config struct {
	SiteName         string
	SitePhone        string
	GoogleMapsAPIKey string
}

// Handler serves the HTML pages.
type Handler struct {
	cfg    Config
	store  submissions.Repository
	pages  map[string]*template.Template
	logger *logging.Logger
}

var funcs = template.FuncMap{
	"year": func() int { return time.Now().Year() },
	"datetime": func(t time.Time) string {
		return t.UTC().Format("Jan 2, 2006 15:04 UTC")
	},
	"orDash": func(s string) string {
		if s == "" {
			return "—"
		}
		return s
	},
}

// NewHandler parses the embedded templates. It panics on a template error,
// which can only come from a broken build.
func NewHandler(cfg Config, store submissions.Repository, logger *logging.Logger) *Handler {
	if store == nil {
		panic("web: store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.SiteName == "" {
		cfg.SiteName = "Cash Home Buyers"
	}
	pages := make(map[string]*template.Template, 2)
	for _, page := range []string{"index.html", "admin.html"} {
		pages[page] = template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page))
	}
	return &Handler{cfg: cfg, store: store, pages: pages, logger: logger}
}

type homeView struct {
	Config
	HeroPoints   []string
	Benefits     []Benefit
	Steps        []Step
	Testimonials []Testimonial
	FAQs         []FAQ
}

// Home handles GET / requests
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", homeView{
		Config:       h.cfg,
		HeroPoints:   heroPoints,
		Benefits:     benefits,
		Steps:        steps,
		Testimonials: testimonials,
		FAQs:         faqs,
	})
}

type adminView struct {
	Config
	submissions.ListSubmissionsResponse
}

// Admin handles GET /admin requests
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	subs, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list submissions for admin page", "error", err)
		http.Error(w, "Failed to fetch submissions", http.StatusInternalServerError)
		return
	}
	h.render(w, "admin.html", adminView{
		Config:                  h.cfg,
		ListSubmissionsResponse: submissions.NewListResponse(subs),
	})
}

// render executes into a buffer first so a template failure never leaves a
// half-written page.
func (h *Handler) render(w http.ResponseWriter, page string, data any) {
	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error("failed to render page", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
