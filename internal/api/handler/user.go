// internal/api/handler/user.go
package handler

import (
	"log/slog"
	"net/http"

	"exercise-tracker/internal/api/types"
	"exercise-tracker/internal/service"
)

// UserHandler handles HTTP requests of the user registry.
type UserHandler struct {
	responder
	service service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// CreateUser handles the create user request.
// POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	// Same policy as LogExercise: an unreadable body carries no fields.
	fields, err := decodeFields(w, r)
	if err != nil {
		h.logger.Debug("Ignoring unreadable user body", "error", err)
	}

	user, err := h.service.CreateUser(r.Context(), fields["username"])
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.CreateUserResponse{
		Username: user.Username,
		ID:       user.ID,
	})
}

// ListUsers handles the list users request.
// GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, users)
}
