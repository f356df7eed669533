// internal/repository/sqlite/schema.go
package sqlite

import (
	"context"
	"fmt"

	"exercise-tracker/internal/repository"
)

const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE
);`

	createExercises = `CREATE TABLE IF NOT EXISTS exercises (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    userId INTEGER NOT NULL,
    description TEXT NOT NULL,
    duration INTEGER NOT NULL,
    date TEXT NOT NULL,
    FOREIGN KEY (userId) REFERENCES users(id)
);`

	idxExercisesUserDate = `CREATE INDEX IF NOT EXISTS idx_exercises_user_date ON exercises(userId, date);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createUsers,
	createExercises,
	idxExercisesUserDate,
}

// EnsureSchema creates the users and exercises tables if they are missing.
// It is safe to call on every start.
func EnsureSchema(ctx context.Context, q repository.DBExecutor) error {
	for _, stmt := range schemaDDL {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
