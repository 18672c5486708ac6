package database

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Fixed sample catalog. INSERT OR IGNORE keeps repeated runs from duplicating rows.
var seedStatements = []string{
	`INSERT OR IGNORE INTO Artist (artist_id, name, genre, biography) VALUES (1, 'The Beatles', 'Rock', 'Legendary band from Liverpool.')`,
	`INSERT OR IGNORE INTO Artist (artist_id, name, genre, biography) VALUES (2, 'Taylor Swift', 'Pop', 'Popular singer-songwriter.')`,

	`INSERT OR IGNORE INTO Album (album_id, title, release_year, artist_id) VALUES (1, 'Abbey Road', 1969, 1)`,
	`INSERT OR IGNORE INTO Album (album_id, title, release_year, artist_id) VALUES (2, '1989', 2014, 2)`,

	`INSERT OR IGNORE INTO Song (song_id, title, duration, track_number, album_id) VALUES (1, 'Come Together', 259, 1, 1)`,
	`INSERT OR IGNORE INTO Song (song_id, title, duration, track_number, album_id) VALUES (2, 'Something', 182, 2, 1)`,
	`INSERT OR IGNORE INTO Song (song_id, title, duration, track_number, album_id) VALUES (3, 'Blank Space', 231, 1, 2)`,
	`INSERT OR IGNORE INTO Song (song_id, title, duration, track_number, album_id) VALUES (4, 'Style', 231, 2, 2)`,
}

// PopulateData inserts the sample artists, albums and songs in a single transaction
func (m *Manager) PopulateData() error {
	var inserted int64
	err := m.transaction(func(tx *sql.Tx) error {
		for i, stmt := range seedStatements {
			result, err := tx.Exec(stmt)
			if err != nil {
				return fmt.Errorf("seed statement %d failed: %w", i+1, classify(err))
			}
			n, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to read seed result: %w", err)
			}
			inserted += n
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to insert sample data: %w", err)
	}

	log.Info().Int64("inserted", inserted).Msg("Sample data inserted successfully")
	return nil
}
