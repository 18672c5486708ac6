package database

import (
	"database/sql"
	"fmt"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// insert executes an INSERT and returns the generated row id
func (m *Manager) insert(query string, args ...any) (int64, error) {
	var id int64
	err := m.withConn(func(conn *sql.DB) error {
		result, err := conn.Exec(query, args...)
		if err != nil {
			return classify(err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted id: %w", err)
		}
		return nil
	})
	return id, err
}

// execAffected executes an UPDATE or DELETE and returns the affected-row count
func (m *Manager) execAffected(query string, args ...any) (int64, error) {
	var affected int64
	err := m.withConn(func(conn *sql.DB) error {
		result, err := conn.Exec(query, args...)
		if err != nil {
			return classify(err)
		}
		affected, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		return nil
	})
	return affected, err
}

// queryRows runs a query and calls fn for each result row.
// Rows and connection are released before it returns.
func (m *Manager) queryRows(query string, args []any, fn func(*sql.Rows) error) error {
	return m.withConn(func(conn *sql.DB) error {
		rows, err := conn.Query(query, args...)
		if err != nil {
			return classify(err)
		}
		defer rows.Close()

		for rows.Next() {
			if err := fn(rows); err != nil {
				return fmt.Errorf("failed to scan row: %w", err)
			}
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate rows: %w", classify(err))
		}
		return nil
	})
}
