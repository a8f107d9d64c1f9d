package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/espn-scores/internal/http/handlers"
	"github.com/preston-bernstein/espn-scores/internal/http/middleware"
	"github.com/preston-bernstein/espn-scores/internal/http/requestutil"
	"github.com/preston-bernstein/espn-scores/internal/metrics"
)

// RouterConfig carries the cross-cutting pieces the router wraps around handlers.
type RouterConfig struct {
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
	AllowedOrigins []string
	// RequestTimeout bounds each request's context. Zero disables it.
	RequestTimeout time.Duration
}

// NewRouter registers the HTTP routes on a chi router.
func NewRouter(h *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(cfg.Logger, cfg.Recorder))
	r.Use(chimiddleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	}
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", requestutil.HeaderRequestID},
			ExposedHeaders: []string{requestutil.HeaderRequestID},
			MaxAge:         300,
		}))
	}

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/sports", h.Sports)
		r.Route("/{sport}", func(r chi.Router) {
			r.Get("/scoreboard", h.Scoreboard)
			r.Get("/games/{status}", h.Games)
			r.Get("/conferences", h.Conferences)
			r.Get("/league", h.League)
		})
	})
	return r
}
