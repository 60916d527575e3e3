package server

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func handleHealth(logger *zap.Logger, db *sql.DB) http.HandlerFunc {
	type result struct {
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]result{}
		status := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
			defer cancel()

			checks["sqlite"] = result{Status: "ok"}
			if err := db.PingContext(ctx); err != nil {
				logger.Error("health check failed", zap.String("name", "sqlite"), zap.Error(err))
				checks["sqlite"] = result{Status: "error"}
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, status, checks)
	}
}
