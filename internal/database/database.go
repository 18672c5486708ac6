package database

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// Manager owns access to the music catalog database.
// It holds no open connection; every operation acquires its own and releases it when done.
type Manager struct {
	path string
}

// New validates that the database at path can be opened and returns a Manager for it
func New(path string) (*Manager, error) {
	m := &Manager{path: path}

	conn, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	log.Debug().Str("path", path).Msg("Database connection established")

	return m, nil
}

// Path returns the database file path
func (m *Manager) Path() string {
	return m.path
}

// dsn builds the connection string. Foreign keys are declared in the schema but
// not enforced: deletes never cascade and never fail on dependent rows.
func (m *Manager) dsn() string {
	return fmt.Sprintf("%s?_pragma=foreign_keys(0)", m.path)
}

// connect opens a single-connection handle and verifies it is usable.
// Callers must Close the returned handle.
func (m *Manager) connect() (*sql.DB, error) {
	conn, err := sql.Open("sqlite", m.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w: %w", ErrConnection, err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w: %w", ErrConnection, err)
	}

	return conn, nil
}

// withConn runs fn against a freshly acquired connection and releases it afterwards
func (m *Manager) withConn(fn func(*sql.DB) error) error {
	conn, err := m.connect()
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(conn)
}

// transaction wraps fn in a transaction on a fresh connection.
// The transaction is committed when fn returns nil and rolled back otherwise.
func (m *Manager) transaction(fn func(*sql.Tx) error) error {
	return m.withConn(func(conn *sql.DB) error {
		tx, err := conn.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", classify(err))
		}

		if err := fn(tx); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("Failed to rollback transaction")
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", classify(err))
		}

		return nil
	})
}
