package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const schema = `
	-- Artists
	CREATE TABLE IF NOT EXISTS Artist (
		artist_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		genre TEXT,
		biography TEXT
	);

	-- Albums, optionally owned by an artist
	CREATE TABLE IF NOT EXISTS Album (
		album_id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		release_year INTEGER,
		artist_id INTEGER,
		FOREIGN KEY (artist_id) REFERENCES Artist(artist_id)
	);

	-- Songs, optionally placed on an album
	CREATE TABLE IF NOT EXISTS Song (
		song_id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		duration INTEGER,
		track_number INTEGER,
		album_id INTEGER,
		FOREIGN KEY (album_id) REFERENCES Album(album_id)
	);
`

// CreateTables creates the Artist, Album and Song tables if they do not exist.
// It is safe to call on every start.
func (m *Manager) CreateTables() error {
	err := m.withConn(func(conn *sql.DB) error {
		for i, stmt := range splitSQLStatements(schema) {
			if _, err := conn.Exec(stmt); err != nil {
				return fmt.Errorf("schema statement %d failed: %w", i+1, classify(err))
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	log.Info().Str("path", m.path).Msg("Tables created successfully")
	return nil
}

// splitSQLStatements splits a SQL string into individual statements.
// It skips comment lines and only returns non-empty statements.
func splitSQLStatements(script string) []string {
	var statements []string
	var current strings.Builder

	for line := range strings.SplitSeq(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSpace(current.String())
			if stmt != "" && stmt != ";" {
				statements = append(statements, stmt)
			}
			current.Reset()
		}
	}

	// Trailing statement without a semicolon
	if remaining := strings.TrimSpace(current.String()); remaining != "" {
		statements = append(statements, remaining)
	}

	return statements
}
