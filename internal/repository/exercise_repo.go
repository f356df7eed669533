// internal/repository/exercise_repo.go
package repository

import (
	"context"

	"exercise-tracker/internal/domain"
)

// ExerciseRepository defines the interface for exercise data operations.
type ExerciseRepository interface {
	// CreateExercise adds a new exercise record using the provided DBExecutor.
	CreateExercise(ctx context.Context, q DBExecutor, exercise *domain.Exercise) error
	// ListExercisesByUser returns a user's exercises within dates, ascending by date.
	ListExercisesByUser(ctx context.Context, q DBExecutor, userID int64, dates domain.DateRange) ([]domain.Exercise, error)
}
