package database

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Failure kinds returned by Manager operations. Match them with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConstraint = errors.New("constraint violation")
	ErrConnection = errors.New("connection failure")
)

// classify tags a driver error with the failure kind it represents.
// Errors that match no kind are returned unchanged.
func classify(err error) error {
	if err == nil || errors.Is(err, ErrConnection) || errors.Is(err, ErrConstraint) {
		return err
	}

	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	// Extended result codes carry the primary code in the low byte
	switch sqliteErr.Code() & 0xff {
	case sqlite3.SQLITE_CONSTRAINT:
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	case sqlite3.SQLITE_CANTOPEN,
		sqlite3.SQLITE_NOTADB,
		sqlite3.SQLITE_BUSY,
		sqlite3.SQLITE_LOCKED,
		sqlite3.SQLITE_IOERR,
		sqlite3.SQLITE_READONLY,
		sqlite3.SQLITE_PERM:
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	return err
}
