// Package api exposes the content library, path generation, and assessment
// scoring over HTTP.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aumai/edumentor/internal/assess"
	"github.com/aumai/edumentor/internal/catalog"
	"github.com/aumai/edumentor/internal/pathgen"
)

// Server bundles the domain services behind an HTTP router.
type Server struct {
	lib       *catalog.Library
	generator *pathgen.Generator
	engine    *assess.Engine
	log       *slog.Logger
}

// NewServer creates a Server around the given library. A nil library gets a
// fresh one seeded with the built-in content.
func NewServer(lib *catalog.Library, log *slog.Logger) *Server {
	if lib == nil {
		lib = catalog.NewLibrary()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		lib:       lib,
		generator: pathgen.New(lib),
		engine:    assess.NewEngine(),
		log:       log,
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/subjects", s.handleSubjects)
	r.Get("/content", s.handleSearchContent)
	r.Post("/content", s.handleAddContent)
	r.Post("/paths", s.handleGeneratePath)
	r.Post("/assessments", s.handleEvaluate)

	return r
}

// ListenAndServe runs the HTTP server until it fails.
func (s *Server) ListenAndServe(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	s.log.Info("edumentor API listening", "addr", addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}
