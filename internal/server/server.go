// Package server implements the crossgrid HTTP API.
//
// Endpoints:
//
//	POST /api/puzzles            generate and store a puzzle
//	GET  /api/puzzles            list stored puzzles
//	GET  /api/puzzles/{id}       fetch a puzzle document
//	GET  /api/puzzles/{id}/svg   rendered SVG grid
//	GET  /api/puzzles/{id}/text  rendered text grid
//	GET  /healthz                liveness probe
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/pmeier/crossgrid/pkg/cache"
	"github.com/pmeier/crossgrid/pkg/config"
	"github.com/pmeier/crossgrid/pkg/observability"
	"github.com/pmeier/crossgrid/pkg/store"
)

// Server wires the HTTP handlers to their backends.
type Server struct {
	cfg    config.Config
	store  store.Store
	cache  cache.Cache
	logger *log.Logger
}

// New creates a Server. The store and cache are owned by the caller and
// not closed by the server.
func New(cfg config.Config, st store.Store, ca cache.Cache, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, store: st, cache: ca, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/puzzles", func(r chi.Router) {
		r.Post("/", s.handleCreatePuzzle)
		r.Get("/", s.handleListPuzzles)
		r.Get("/{id}", s.handleGetPuzzle)
		r.Get("/{id}/svg", s.handleRenderSVG)
		r.Get("/{id}/text", s.handleRenderText)
	})

	return r
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, duration)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", duration)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
