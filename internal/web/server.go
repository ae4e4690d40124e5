// Package web provides the HTTP server and JSON handlers for the song
// repertoire API.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/candeia/chants/internal/config"
	"github.com/candeia/chants/internal/core"
	"github.com/candeia/chants/internal/store"
	"github.com/candeia/chants/internal/web/middleware"
)

// Server is the HTTP server for the repertoire application.
type Server struct {
	store    *store.Store
	resolver middleware.TokenResolver
	cfg      *config.Config
	router   *chi.Mux
	server   *http.Server
}

// NewServer wires the router, middleware, and routes.
func NewServer(st *store.Store, resolver middleware.TokenResolver, cfg *config.Config) *Server {
	s := &Server{
		store:    st,
		resolver: resolver,
		cfg:      cfg,
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Compress(5))
	s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))

	s.router.Use(securityHeaders)

	if s.cfg.Rate.Enabled {
		limiter := newRateLimiter(s.cfg.Rate.RequestsPerMinute, time.Minute)
		s.router.Use(limiter.middleware)
	}
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})

	s.router.Route("/api", func(r chi.Router) {
		// Account creation is the only unauthenticated operation.
		r.Post("/accounts", s.handleCreateAccount)

		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(s.resolver))

			r.Delete("/account", s.handleDeleteAccount)

			r.Get("/songs", s.handleListSongs)
			r.Post("/songs", s.handleCreateSong)
			r.Put("/songs/{songID}", s.handleUpdateSong)
			r.Delete("/songs/{songID}", s.handleDeleteSong)
			r.Post("/songs/delete", s.handleDeleteSelected)
			r.Delete("/songs", s.handleDeleteAllSongs)

			r.Post("/songs/import", s.handleImport)
			r.Get("/songs/export", s.handleExport)

			r.Get("/prompter", s.handleGetPrompter)
			r.Put("/prompter", s.handleUpdatePrompter)
		})
	})
}

// owned returns the caller's row-level-scoped repository view. BearerAuth
// guarantees the owner is present on every authenticated route.
func (s *Server) owned(r *http.Request) (*store.OwnedStore, error) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		return nil, core.ErrUnauthorized
	}
	return s.store.ForOwner(owner), nil
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds response hardening headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
