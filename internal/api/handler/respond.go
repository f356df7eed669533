// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"exercise-tracker/internal/api/types"
	"exercise-tracker/internal/util"
)

// DefaultTimeout bounds every request; store calls inherit it through the request context.
const DefaultTimeout = 10 * time.Second

// responder holds the JSON response helpers shared by all handlers.
type responder struct {
	logger *slog.Logger
}

// Helper function to send JSON responses.
func (h responder) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
// Anything that is not a known client error becomes a 500 without internal detail.
func (h responder) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = util.Message(err)
	case util.IsError(err, util.ErrUserNotFound), util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = util.ErrUserNotFound.Error()
	case util.IsError(err, util.ErrDuplicateEntry):
		statusCode = http.StatusBadRequest
		message = util.Message(err)
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, types.ErrorResponse{Error: message})
}

// userIDParam reads the {_id} path segment. ok is false when it is not an integer.
func userIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "_id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
