// Package api exposes GEDCOM parsing over HTTP.
//
// The API is stateless: every request carries the full GEDCOM text in its
// body and is parsed fresh. Export responses may be served from the shared
// artifact cache when one is configured.
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Kaper156/pygedcom/pkg/cache"
)

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	log    *log.Logger
	cache  cache.Cache
}

// NewServer creates and configures the HTTP server. The cache may be a
// [cache.NullCache] to disable export caching.
func NewServer(logger *log.Logger, c cache.Cache) *Server {
	s := &Server{log: logger, cache: c}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(requestLogger(s.log))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/verify", s.handleVerify)
		r.Post("/parse", s.handleParse)
		r.Post("/export", s.handleExport)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
