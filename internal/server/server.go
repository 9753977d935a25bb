package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Velesio/velesio-aiserver/internal/search"
	"github.com/Velesio/velesio-aiserver/internal/theme"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string // directory containing the built site; empty serves the API only
	BasePath string // URL path the site is mounted under, e.g. "/" or "/docs/"
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves the built site together with the search and theme APIs.
type Server struct {
	cfg        Config
	search     *search.Service
	themes     *theme.Store
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all dependencies and registers every route.
func New(cfg Config, svc *search.Service, themes *theme.Store) *Server {
	s := &Server{
		cfg:    cfg,
		search: svc,
		themes: themes,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.search != nil {
		search.RegisterRoutes(r, s.search)
	}
	if s.themes != nil {
		theme.RegisterRoutes(r, s.themes)
	}

	if s.cfg.SiteDir != "" {
		s.mountSite(r)
	}

	return r
}

// mountSite serves the built site under the base path.
func (s *Server) mountSite(r chi.Router) {
	base := "/" + strings.Trim(s.cfg.BasePath, "/")
	files := http.FileServer(http.Dir(s.cfg.SiteDir))

	if base == "/" {
		r.Handle("/*", files)
		return
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, base+"/", http.StatusFound)
	})
	r.Get(base, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, base+"/", http.StatusMovedPermanently)
	})
	r.Handle(base+"/*", http.StripPrefix(base, files))
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("docsite server listening", "addr", addr, "base_path", s.cfg.BasePath)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
