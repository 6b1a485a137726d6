package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/hitec/nhplus/internal/common"
)

// IsConstraintViolation reports whether err is a driver error raised by an
// integrity constraint (NOT NULL, UNIQUE, CHECK or FOREIGN KEY).
func IsConstraintViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		// Extended result codes keep the primary code in the low byte.
		return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}

	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		// SQLSTATE class 23: integrity constraint violation.
		return strings.HasPrefix(pe.Code, "23")
	}

	return false
}

// wrap annotates a driver error with the failed action. Constraint violations
// also carry common.ErrorConstraint.
func wrap(action, entity string, err error) error {
	if IsConstraintViolation(err) {
		return fmt.Errorf("failed to %s %s: %w: %w", action, entity, common.ErrorConstraint, err)
	}
	return fmt.Errorf("failed to %s %s: %w", action, entity, err)
}
