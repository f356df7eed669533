// internal/domain/user.go
package domain

// User represents a person who logs exercises.
type User struct {
	ID       int64  `db:"id" json:"id"`             // Primary key, INTEGER AUTOINCREMENT in DB
	Username string `db:"username" json:"username"` // Unique username
}

// NewUser creates a new User instance. The ID is assigned by the store.
func NewUser(username string) *User {
	return &User{Username: username}
}
