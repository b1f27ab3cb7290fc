package contact

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds a JSON submission.
const maxBodyBytes = 64 * 1024

// RegisterRoutes mounts the contact API routes.
func RegisterRoutes(r chi.Router, store *Store, logger *slog.Logger) {
	r.Post("/api/contact", handleCreate(store, logger))
}

func handleCreate(store *Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m Message
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&m); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		m.ID = ""
		m.RemoteAddr = r.RemoteAddr

		created, err := store.Create(r.Context(), m)
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusUnprocessableEntity, verr)
		case err != nil:
			logger.Error("storing contact message failed", "err", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not store message"})
		default:
			logger.Info("contact message received", "id", created.ID)
			writeJSON(w, http.StatusCreated, map[string]string{"id": created.ID, "status": "received"})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
