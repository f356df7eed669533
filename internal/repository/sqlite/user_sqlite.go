// internal/repository/sqlite/user_sqlite.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
	"exercise-tracker/internal/util"
)

// UserRepository implements repository.UserRepository for SQLite.
type UserRepository struct{}

// NewUserRepository creates a new UserRepository.
// The connection is not stored; every method receives a DBExecutor.
func NewUserRepository() repository.UserRepository {
	return &UserRepository{}
}

// CreateUser inserts a new user and fills in its generated ID.
// A taken username yields util.ErrDuplicateEntry carrying the store's message.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (username) VALUES (?) RETURNING id`
	err := q.QueryRowContext(ctx, query, user.Username).Scan(&user.ID)
	if err != nil {
		if sqliteErr, ok := isConstraintViolation(err); ok {
			return util.NewConflictError(sqliteErr.Error())
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID using the provided DBExecutor.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, username FROM users WHERE id = ?`
	err := q.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// ListUsers returns all users in insertion order.
func (r *UserRepository) ListUsers(ctx context.Context, q repository.DBExecutor) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT id, username FROM users ORDER BY id`
	if err := q.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
