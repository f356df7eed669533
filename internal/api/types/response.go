// internal/api/types/response.go
package types

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateUserResponse is returned by POST /api/users.
type CreateUserResponse struct {
	Username string `json:"username"`
	ID       int64  `json:"id"`
}

// ExerciseResponse is returned by POST /api/users/{_id}/exercises.
type ExerciseResponse struct {
	UserID      int64  `json:"userId"`
	ExerciseID  int64  `json:"exerciseId"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	Date        string `json:"date"`
}

// LogEntry is one exercise inside a LogResponse.
type LogEntry struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is returned by GET /api/users/{_id}/logs.
// Count is the number of exercises matching the date filters, before the limit.
type LogResponse struct {
	UserID   int64      `json:"userId"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Logs     []LogEntry `json:"logs"`
}
