// internal/service/exercise_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/observability"
	"exercise-tracker/internal/repository"
	"exercise-tracker/internal/util"
	"exercise-tracker/pkg/db"
)

// Client-facing validation messages.
const (
	msgFieldsRequired  = "Description and duration are required"
	msgInvalidDuration = "Duration must be a positive integer"
	msgInvalidDate     = "Invalid date format"
	msgInvalidFrom     = "from query param is invalid. It must be a date"
	msgInvalidTo       = "to query param is invalid. It must be a date"
	msgInvalidLimit    = "Limit must be a positive integer"
)

// maxDuration keeps durations inside SQLite's signed 64-bit INTEGER.
var maxDuration = decimal.NewFromInt(1<<63 - 1)

// LogExerciseInput carries the raw, unvalidated fields of a new exercise.
// Duration stays textual so a malformed value can be reported after the user lookup.
type LogExerciseInput struct {
	Description string `validate:"required"`
	Duration    string `validate:"required"`
	Date        string // Optional; defaults to today
}

// LogParams carries the optional raw query parameters of a log request.
// A nil field was not supplied; a non-nil empty string was supplied empty.
type LogParams struct {
	From  *string
	To    *string
	Limit *string
}

// ExerciseService defines the interface for exercise logging and log queries.
type ExerciseService interface {
	LogExercise(ctx context.Context, userID int64, input LogExerciseInput) (*domain.Exercise, error)
	GetLog(ctx context.Context, userID int64, params LogParams) (*domain.ExerciseLog, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	dbBeginner   db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor   repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	beginTx      db.BeginTxFunc
	commitTx     db.CommitTxFunc
	rollbackTx   db.RollbackTxFunc
	now          func() time.Time
}

// NewExerciseService creates a new instance of ExerciseService.
func NewExerciseService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	exerciseRepo repository.ExerciseRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) ExerciseService {
	return &exerciseService{
		dbBeginner:   dbBeginner,
		dbExecutor:   dbExecutor,
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		beginTx:      beginTx,
		commitTx:     commitTx,
		rollbackTx:   rollbackTx,
		now:          time.Now,
	}
}

// LogExercise records one exercise for an existing user.
// The user lookup comes first, so an unknown user is reported even when the other fields are invalid.
func (s *exerciseService) LogExercise(ctx context.Context, userID int64, input LogExerciseInput) (*domain.Exercise, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("log exercise: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("log exercise: transaction controller does not implement DBExecutor")
	}

	if _, err := s.lookupUser(ctx, txExecutor, userID); err != nil {
		return nil, fmt.Errorf("log exercise: %w", err)
	}

	if err := util.ValidateStruct(input); err != nil {
		return nil, util.NewValidationError(msgFieldsRequired)
	}

	duration, err := parseDuration(input.Duration)
	if err != nil {
		return nil, err
	}

	date := domain.FormatDate(s.now())
	if input.Date != "" {
		date, err = domain.NormalizeDate(input.Date)
		if err != nil {
			return nil, util.NewValidationError(msgInvalidDate)
		}
	}

	exercise := domain.NewExercise(userID, input.Description, duration, date)
	if err := s.exerciseRepo.CreateExercise(ctx, txExecutor, exercise); err != nil {
		return nil, fmt.Errorf("log exercise: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("log exercise: failed to commit transaction: %w", err)
	}

	observability.RecordExerciseLogged(duration)
	return exercise, nil
}

// GetLog returns a user's exercises between the optional from/to dates, ascending by date.
// Count is taken before the optional limit truncates the entries.
func (s *exerciseService) GetLog(ctx context.Context, userID int64, params LogParams) (*domain.ExerciseLog, error) {
	dates, limit, err := parseLogParams(params)
	if err != nil {
		return nil, err
	}

	user, err := s.lookupUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}

	exercises, err := s.exerciseRepo.ListExercisesByUser(ctx, s.dbExecutor, userID, dates)
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}

	exerciseLog := &domain.ExerciseLog{
		User:      *user,
		Count:     len(exercises),
		Exercises: exercises,
	}
	if limit != nil && *limit < len(exercises) {
		exerciseLog.Exercises = exercises[:*limit]
	}
	return exerciseLog, nil
}

// lookupUser maps a missing user onto util.ErrUserNotFound.
func (s *exerciseService) lookupUser(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, q, userID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	return user, nil
}

// parseDuration accepts a whole, non-negative number of minutes. Zero is allowed.
func parseDuration(raw string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !d.IsInteger() || d.IsNegative() || d.GreaterThan(maxDuration) {
		return 0, util.NewValidationError(msgInvalidDuration)
	}
	return d.IntPart(), nil
}

func parseLogParams(params LogParams) (domain.DateRange, *int, error) {
	var dates domain.DateRange
	var err error

	if params.From != nil {
		if dates.From, err = domain.NormalizeDate(*params.From); err != nil {
			return dates, nil, util.NewValidationError(msgInvalidFrom)
		}
	}
	if params.To != nil {
		if dates.To, err = domain.NormalizeDate(*params.To); err != nil {
			return dates, nil, util.NewValidationError(msgInvalidTo)
		}
	}

	if params.Limit == nil {
		return dates, nil, nil
	}
	text := strings.TrimSpace(*params.Limit)
	limit, err := strconv.Atoi(text)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(text, "-") {
		// Larger than any result set; keep everything.
		limit, err = math.MaxInt, nil
	}
	if err != nil || limit < 0 {
		return dates, nil, util.NewValidationError(msgInvalidLimit)
	}
	return dates, &limit, nil
}
