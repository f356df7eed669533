// internal/repository/sqlite/exercise_sqlite.go
package sqlite

import (
	"context"
	"fmt"
	"strings"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
)

// ExerciseRepository implements repository.ExerciseRepository for SQLite.
type ExerciseRepository struct{}

// NewExerciseRepository creates a new ExerciseRepository.
func NewExerciseRepository() repository.ExerciseRepository {
	return &ExerciseRepository{}
}

// CreateExercise inserts a new exercise record and fills in its generated ID.
func (r *ExerciseRepository) CreateExercise(ctx context.Context, q repository.DBExecutor, exercise *domain.Exercise) error {
	query := `INSERT INTO exercises (userId, description, duration, date)
              VALUES (?, ?, ?, ?) RETURNING id`

	err := q.QueryRowContext(ctx, query,
		exercise.UserID,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
	).Scan(&exercise.ID)

	if err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

// ListExercisesByUser returns every exercise of userID whose date lies within dates,
// ascending by date. No row limit is applied here; callers truncate after counting.
func (r *ExerciseRepository) ListExercisesByUser(ctx context.Context, q repository.DBExecutor, userID int64, dates domain.DateRange) ([]domain.Exercise, error) {
	query, args := buildLogQuery(userID, dates)

	exercises := []domain.Exercise{}
	if err := q.SelectContext(ctx, &exercises, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch exercises for user %d: %w", userID, err)
	}
	return exercises, nil
}

// buildLogQuery assembles the predicate for one user's log.
func buildLogQuery(userID int64, dates domain.DateRange) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, userId, description, duration, date FROM exercises WHERE userId = ?`)
	args := []interface{}{userID}

	if dates.From != "" {
		sb.WriteString(` AND date >= ?`)
		args = append(args, dates.From)
	}
	if dates.To != "" {
		sb.WriteString(` AND date <= ?`)
		args = append(args, dates.To)
	}
	sb.WriteString(` ORDER BY date, id`)

	return sb.String(), args
}
