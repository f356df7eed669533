// internal/service/user_service.go
package service

import (
	"context"
	"fmt"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/observability"
	"exercise-tracker/internal/repository"
	"exercise-tracker/internal/util"
)

// UserService defines the interface for user registry operations.
type UserService interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type createUserInput struct {
	Username string `validate:"required"`
}

// userService implements the UserService interface.
type userService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository) UserService {
	return &userService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
	}
}

// CreateUser registers a new username. Uniqueness is left to the store's constraint.
func (s *userService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	if err := util.ValidateStruct(createUserInput{Username: username}); err != nil {
		return nil, util.NewValidationError("Username is required")
	}

	user := domain.NewUser(username)
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		if util.IsError(err, util.ErrDuplicateEntry) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	observability.RecordUserCreated()
	return user, nil
}

// ListUsers returns all users in insertion order.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
