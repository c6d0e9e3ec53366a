package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// Sentinel errors returned by repositories. Raw driver errors never cross
// the package boundary without being wrapped in one of these.
var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists means an insert hit a uniqueness constraint.
	// Callers should treat the row as existing and re-fetch.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnavailable means the store could not complete the operation
	// (connection failure, timeout). The operation may be retried later.
	ErrUnavailable = errors.New("store unavailable")
)

// wrapError converts a driver error into one of the package sentinels,
// keeping the original error in the chain.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if isConstraintViolation(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrAlreadyExists, err)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
}

// isConstraintViolation reports whether err is a uniqueness or foreign key
// violation from either supported driver.
func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Class 23 — integrity constraint violation
		return pqErr.Code.Class() == "23"
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
