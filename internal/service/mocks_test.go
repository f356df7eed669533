// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
	"exercise-tracker/pkg/db"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, q repository.DBExecutor) ([]domain.User, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockExerciseRepository is a mock implementation of repository.ExerciseRepository.
type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) CreateExercise(ctx context.Context, q repository.DBExecutor, exercise *domain.Exercise) error {
	args := m.Called(ctx, q, exercise)
	return args.Error(0)
}

func (m *MockExerciseRepository) ListExercisesByUser(ctx context.Context, q repository.DBExecutor, userID int64, dates domain.DateRange) ([]domain.Exercise, error) {
	args := m.Called(ctx, q, userID, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Exercise), args.Error(1)
}

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// MockTxController is a mock implementation of db.TxController.
// It also implicitly implements repository.DBExecutor for testing purposes
// by embedding MockDBExecutor.
type MockTxController struct {
	mock.Mock
	MockDBExecutor // Embed MockDBExecutor to satisfy repository.DBExecutor interface
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// exerciseFixture bundles an exerciseService with all of its mocks.
type exerciseFixture struct {
	ctx          context.Context
	service      *exerciseService
	beginner     *MockDBBeginner
	executor     *MockDBExecutor
	tx           *MockTxController
	userRepo     *MockUserRepository
	exerciseRepo *MockExerciseRepository
}

func newExerciseFixture() *exerciseFixture {
	f := &exerciseFixture{
		ctx:          context.Background(),
		beginner:     new(MockDBBeginner),
		executor:     new(MockDBExecutor),
		tx:           new(MockTxController),
		userRepo:     new(MockUserRepository),
		exerciseRepo: new(MockExerciseRepository),
	}
	svc := NewExerciseService(
		f.beginner,
		f.executor,
		f.userRepo,
		f.exerciseRepo,
		func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
			return f.tx, nil
		},
		func(tx db.TxController) error {
			return f.tx.Commit()
		},
		func(tx db.TxController) {
			_ = f.tx.Rollback()
		},
	)
	f.service = svc.(*exerciseService)
	return f
}

func (f *exerciseFixture) assertExpectations(t mock.TestingT) {
	mock.AssertExpectationsForObjects(t, f.beginner, f.executor, f.tx, f.userRepo, f.exerciseRepo)
}
