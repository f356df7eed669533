// internal/repository/sqlite/errors.go
package sqlite

import (
	"errors"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// isConstraintViolation reports whether err is a SQLite constraint failure.
// Extended codes (e.g. SQLITE_CONSTRAINT_UNIQUE) share the primary code in the low byte.
func isConstraintViolation(err error) (*sqlitedriver.Error, bool) {
	var sqliteErr *sqlitedriver.Error
	if !errors.As(err, &sqliteErr) {
		return nil, false
	}
	return sqliteErr, sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}
