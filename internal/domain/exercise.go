// internal/domain/exercise.go
package domain

// Exercise is one logged activity owned by exactly one user.
type Exercise struct {
	ID          int64  `db:"id" json:"id"`
	UserID      int64  `db:"userId" json:"userId"`
	Description string `db:"description" json:"description"`
	Duration    int64  `db:"duration" json:"duration"` // Minutes, never negative
	Date        string `db:"date" json:"date"`         // YYYY-MM-DD in the reference zone
}

// NewExercise creates a new Exercise instance. The ID is assigned by the store.
func NewExercise(userID int64, description string, duration int64, date string) *Exercise {
	return &Exercise{
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
}

// DateRange bounds a log query. Empty bounds are open.
// Both bounds are inclusive and in YYYY-MM-DD form, so string comparison is chronological.
type DateRange struct {
	From string
	To   string
}

// ExerciseLog is the filtered, date-ordered view of one user's exercises.
type ExerciseLog struct {
	User      User
	Count     int        // Size of the filtered set before any limit
	Exercises []Exercise // At most Limit entries when a limit was requested
}

// ShortDate returns the first ten characters of a stored date.
func ShortDate(date string) string {
	if len(date) > len(DateLayout) {
		return date[:len(DateLayout)]
	}
	return date
}
