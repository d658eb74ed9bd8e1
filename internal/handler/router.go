package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/travelplanner/internal/metrics"
	"github.com/pkordes/travelplanner/internal/middleware"
	"github.com/pkordes/travelplanner/spec"
)

// RouterOptions configures the middleware stack built by NewRouter.
type RouterOptions struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics // nil disables /metrics and latency recording
	CORSOrigins  []string
	MaxBodyBytes int64 // <= 0 disables the limit
	CookieSecure bool
}

// NewRouter mounts every route on a chi router.
//
// Middleware is applied in order: RequestID → RealIP → Profile → SlogLogger →
// Metrics → Recoverer → MaxBodySize.
// Profile runs before the logger so each log line carries the profile id.
// Recoverer catches panics and returns HTTP 500 instead of crashing.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	if opts.Logger == nil {
		opts.Logger = s.log
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewProfileHandler(opts.CookieSecure))
	r.Use(middleware.NewSlogLogger(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.NewMetricsHandler(opts.Metrics))
	}
	r.Use(chimiddleware.Recoverer)
	if opts.MaxBodyBytes > 0 {
		r.Use(middleware.NewMaxBodySizeHandler(opts.MaxBodyBytes))
	}

	// Pages.
	r.Get("/", s.Landing)
	r.Get("/about", s.About)
	r.Get("/login", s.LoginForm)
	r.Post("/login", s.Login)
	r.Post("/logout", s.Logout)
	r.Post("/theme", s.ToggleTheme)

	r.Get("/dashboard", s.Dashboard)
	r.Post("/trips", s.AddTrip)
	r.Post("/trips/{tripID}/delete", s.DeleteTrip)
	r.Post("/trips/{tripID}/view", s.ViewTrip)

	r.Get("/trip-detail", s.TripDetail)
	r.Post("/trip-detail/{kind}", s.AddItem)
	r.Post("/trip-detail/{kind}/{itemID}/delete", s.DeleteItem)

	// Machine-facing endpoints.
	r.Get("/healthz", s.GetHealth)
	r.Get("/export", s.GetExport)
	r.Get("/openapi.yaml", serveOpenAPI)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.NewCORSHandler(opts.CORSOrigins))
		r.Get("/trips", s.ListTrips)
		r.Get("/trips/{id}", s.GetTrip)
	})

	r.NotFound(s.NotFound)
	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
