package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) setupRoutes() {
	// Middleware stack
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(LoggerMiddleware(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.SetHeader("Content-Type", "application/json"))

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", s.handleGetAll)               // GET /api/v1/settings
			r.Patch("/", s.handleUpdate)             // PATCH /api/v1/settings
			r.Get("/export", s.handleExport)         // GET /api/v1/settings/export
			r.Post("/import", s.handleImport)        // POST /api/v1/settings/import
			r.Post("/auto-reset", s.handleAutoReset) // POST /api/v1/settings/auto-reset
			r.Get("/{key}", s.handleGetSetting)      // GET /api/v1/settings/{key}
		})

		r.Get("/ui", s.handleUIState)
	})
}
