package database

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Optimize runs SQLite's PRAGMA optimize to refresh planner stats.
func (m *Manager) Optimize() error {
	if err := m.maintenance("PRAGMA optimize"); err != nil {
		return fmt.Errorf("failed to optimize database: %w", err)
	}
	return nil
}

// Vacuum rebuilds the database file to reclaim unused space.
func (m *Manager) Vacuum() error {
	if err := m.maintenance("VACUUM"); err != nil {
		return fmt.Errorf("failed to vacuum database: %w", err)
	}
	return nil
}

func (m *Manager) maintenance(stmt string) error {
	if m == nil || m.path == "" {
		return fmt.Errorf("database not initialized")
	}

	err := m.withConn(func(conn *sql.DB) error {
		_, err := conn.Exec(stmt)
		return classify(err)
	})
	if err != nil {
		return err
	}

	log.Info().Str("statement", stmt).Str("path", m.path).Msg("Database maintenance complete")
	return nil
}
