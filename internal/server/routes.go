package server

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func addRoutes(r chi.Router, logger *zap.Logger, sessions *Registry, db *sql.DB) {
	r.Get("/healthz", handleHealth(logger, db))
	r.Get("/api/stages", handleStages())

	r.Post("/api/sessions", handleCreateSession(sessions))
	r.Route("/api/sessions/{id}", func(r chi.Router) {
		r.Get("/", handleGetSession(sessions))
		r.Delete("/", handleDeleteSession(sessions))
		r.Post("/events", handleSessionEvent(logger, sessions))
	})
}
