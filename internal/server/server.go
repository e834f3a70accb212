// Package server exposes the portfolio over a JSON/CSV HTTP API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// DriverLister is the slice of the driver service the API needs.
type DriverLister interface {
	List(ctx context.Context) ([]domain.Driver, error)
	SetWeight(ctx context.Context, id string, weight int) error
}

type ProjectLister interface {
	List(ctx context.Context) ([]domain.Project, error)
}

type ResourceLister interface {
	List(ctx context.Context) ([]domain.Resource, error)
}

type TaskLister interface {
	List(ctx context.Context) ([]domain.Task, error)
}

// Services are the use cases served over HTTP.
type Services struct {
	Drivers   DriverLister
	Projects  ProjectLister
	Resources ResourceLister
	Tasks     TaskLister
	Alignment app.AlignmentUseCase
	Leveling  app.LevelingUseCase
	Scenario  app.ScenarioUseCase
	Export    app.ExportUseCase
}

type Config struct {
	Addr           string
	AllowedOrigins []string
	Log            zerolog.Logger
	Services       Services
}

type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	svc    Services
}

func New(cfg Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		log:    cfg.Log.With().Str("component", "server").Logger(),
		svc:    cfg.Services,
	}

	s.setupMiddleware(cfg.AllowedOrigins)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(30 * time.Second))

	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/drivers", s.handleListDrivers)
		r.Put("/drivers/{id}/weight", s.handleSetDriverWeight)

		r.Get("/projects", s.handleListProjects)
		r.Get("/alignment", s.handleAlignment)

		r.Get("/resources", s.handleListResources)
		r.Get("/tasks", s.handleListTasks)

		r.Route("/leveling", func(r chi.Router) {
			r.Get("/", s.handleLevelingGrid)
			r.Get("/suggestions", s.handleSuggestions)
			r.Post("/apply", s.handleApplySuggestion)
		})

		r.Route("/scenario", func(r chi.Router) {
			r.Get("/", s.handleScenario)
			r.Put("/projects/{id}", s.handleAdjustScenario)
			r.Post("/reset", s.handleResetScenario)
		})

		r.Get("/export.csv", s.handleExportCSV)
	})
}

func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("starting HTTP server")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
