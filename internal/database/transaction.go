package database

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// TransactionDemo reports what DemonstrateTransaction observed
type TransactionDemo struct {
	// TempArtistID is the id the temporary artist received inside the transaction
	TempArtistID int64
	CountBefore  int
	CountDuring  int
	CountAfter   int
}

// DemonstrateTransaction inserts a temporary artist inside a transaction and then
// always rolls it back, so the Artist table is unchanged afterwards.
func (m *Manager) DemonstrateTransaction() (*TransactionDemo, error) {
	demo := &TransactionDemo{}

	err := m.withConn(func(conn *sql.DB) error {
		if err := conn.QueryRow("SELECT COUNT(*) FROM Artist").Scan(&demo.CountBefore); err != nil {
			return fmt.Errorf("failed to count artists: %w", classify(err))
		}

		tx, err := conn.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", classify(err))
		}
		// Rollback after a successful Rollback is a no-op returning sql.ErrTxDone
		defer tx.Rollback()

		result, err := tx.Exec(`INSERT INTO Artist (name, genre, biography) VALUES ('Temp Artist', 'Test', 'Demo')`)
		if err != nil {
			return fmt.Errorf("failed to insert temporary artist: %w", classify(err))
		}
		if demo.TempArtistID, err = result.LastInsertId(); err != nil {
			return fmt.Errorf("failed to get temporary artist id: %w", err)
		}
		if err := tx.QueryRow("SELECT COUNT(*) FROM Artist").Scan(&demo.CountDuring); err != nil {
			return fmt.Errorf("failed to count artists in transaction: %w", classify(err))
		}

		log.Debug().Int64("artist_id", demo.TempArtistID).Msg("Temporary artist added, rolling back")

		if err := tx.Rollback(); err != nil {
			return fmt.Errorf("failed to rollback transaction: %w", classify(err))
		}

		if err := conn.QueryRow("SELECT COUNT(*) FROM Artist").Scan(&demo.CountAfter); err != nil {
			return fmt.Errorf("failed to count artists: %w", classify(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return demo, nil
}
