package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/autolote/autolote-core/internal/auth"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Health check (no auth required)
	r.Get("/health", s.handleHealth)

	// Login is always public
	r.Post("/auth/login", s.handleLogin)

	// Registration is public or admin-gated depending on deployment
	if s.secCfg.PublicRegistration {
		r.Post("/auth/register", s.handleRegister)
	} else {
		r.With(s.authenticate, s.requireRole(auth.RoleAdmin)).
			Post("/auth/register", s.handleRegister)
	}

	// User management, admin only
	r.Route("/auth/user", func(r chi.Router) {
		r.Use(s.authenticate)
		r.Use(s.requireRole(auth.RoleAdmin))

		r.Get("/", s.handleListUsers)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetUser)
			r.Put("/", s.handleUpdateUser)
			r.Delete("/", s.handleDeleteUser)
		})
	})

	// Vehicle inventory: everyone reads, gerente/admin write
	r.Route("/carros", func(r chi.Router) {
		r.Use(s.authenticate)

		r.Group(func(r chi.Router) {
			r.Use(s.requireRole(auth.RoleVendedor, auth.RoleGerente, auth.RoleAdmin))
			r.Get("/", s.handleListCarros)
			r.Get("/{id}", s.handleGetCarro)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireRole(auth.RoleGerente, auth.RoleAdmin))
			r.Post("/", s.handleCreateCarro)
			r.Put("/{id}", s.handleUpdateCarro)
			r.Delete("/{id}", s.handleDeleteCarro)
		})
	})

	// WebSocket (auth via token query parameter, validated in handler)
	r.Get("/ws", s.handleWebSocket)

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
