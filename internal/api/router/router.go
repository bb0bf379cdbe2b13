package router

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/wolfman30/cashoffer-leads/internal/http/middleware"
	"github.com/wolfman30/cashoffer-leads/internal/submissions"
	"github.com/wolfman30/cashoffer-leads/internal/web"
	"github.com/wolfman30/cashoffer-leads/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	SubmissionsHandler *submissions.Handler
	WebHandler         *web.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// AdminAuthSecret guards /admin and /api/admin when non-blank.
	// Blank leaves the admin surface unauthenticated.
	AdminAuthSecret string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		if cfg.WebHandler != nil {
			public.Get("/", cfg.WebHandler.Home)
		}
		public.Post("/api/submit-form", cfg.SubmissionsHandler.CreateSubmission)
	})

	// Admin endpoints
	r.Group(func(admin chi.Router) {
		if strings.TrimSpace(cfg.AdminAuthSecret) != "" {
			admin.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
		}
		admin.Get("/api/admin/submissions", cfg.SubmissionsHandler.ListSubmissions)
		if cfg.WebHandler != nil {
			admin.Get("/admin", cfg.WebHandler.Admin)
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
