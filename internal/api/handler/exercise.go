// internal/api/handler/exercise.go
package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"exercise-tracker/internal/api/types"
	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/service"
	"exercise-tracker/internal/util"
)

// ExerciseHandler handles HTTP requests for logging and reading exercises.
type ExerciseHandler struct {
	responder
	service service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(svc service.ExerciseService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// LogExercise handles the log exercise request.
// POST /api/users/{_id}/exercises
func (h *ExerciseHandler) LogExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		h.respondWithError(w, util.ErrUserNotFound)
		return
	}

	// An unreadable body is treated as empty: the user lookup still runs first
	// and validation then reports the missing fields.
	fields, err := decodeFields(w, r)
	if err != nil {
		h.logger.Debug("Ignoring unreadable exercise body", "user_id", userID, "error", err)
	}

	exercise, err := h.service.LogExercise(r.Context(), userID, service.LogExerciseInput{
		Description: fields["description"],
		Duration:    fields["duration"],
		Date:        fields["date"],
	})
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.ExerciseResponse{
		UserID:      exercise.UserID,
		ExerciseID:  exercise.ID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	})
}

// GetLog handles the exercise log request.
// GET /api/users/{_id}/logs?from=&to=&limit=
func (h *ExerciseHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		h.respondWithError(w, util.ErrUserNotFound)
		return
	}

	query := r.URL.Query()
	exerciseLog, err := h.service.GetLog(r.Context(), userID, service.LogParams{
		From:  optionalParam(query, "from"),
		To:    optionalParam(query, "to"),
		Limit: optionalParam(query, "limit"),
	})
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	logs := make([]types.LogEntry, 0, len(exerciseLog.Exercises))
	for _, exercise := range exerciseLog.Exercises {
		logs = append(logs, types.LogEntry{
			ID:          exercise.ID,
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        domain.ShortDate(exercise.Date),
		})
	}

	h.respondWithJSON(w, http.StatusOK, types.LogResponse{
		UserID:   exerciseLog.User.ID,
		Username: exerciseLog.User.Username,
		Count:    exerciseLog.Count,
		Logs:     logs,
	})
}

// optionalParam distinguishes an absent parameter (nil) from an empty one.
func optionalParam(query url.Values, key string) *string {
	if !query.Has(key) {
		return nil
	}
	value := query.Get(key)
	return &value
}
