package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abhisek/aigua/internal/session"
)

// maxEventBytes bounds an event body; asks are short.
const maxEventBytes = 16 << 10

type sessionResponse struct {
	ID    string           `json:"id"`
	State session.Snapshot `json:"state"`
}

func handleCreateSession(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, snap := sessions.Create()
		writeJSON(w, http.StatusCreated, sessionResponse{ID: id, State: snap})
	}
}

func handleGetSession(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ls, ok := sessions.get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeJSON(w, http.StatusOK, ls.state())
	}
}

func handleDeleteSession(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !sessions.Delete(chi.URLParam(r, "id")) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleSessionEvent(logger *zap.Logger, sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		ls, ok := sessions.get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		defer r.Body.Close()
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEventBytes))
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				writeError(w, http.StatusRequestEntityTooLarge, "event too large")
				return
			}
			writeError(w, http.StatusBadRequest, "reading body")
			return
		}

		ev, err := session.DecodeEvent(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		logger.Debug("session event", zap.String("session", id), zap.String("type", string(ev.Type())))
		writeJSON(w, http.StatusOK, ls.apply(r.Context(), ev))
	}
}
