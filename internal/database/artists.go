package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Artist represents a row of the Artist table.
type Artist struct {
	ID        int64
	Name      string
	Genre     string
	Biography string
}

// NewArtist holds the fields for inserting an artist. Values are stored as given.
type NewArtist struct {
	Name      string
	Genre     string
	Biography string
}

const artistColumns = "artist_id, name, genre, biography"

func scanArtist(row rowScanner) (*Artist, error) {
	var (
		artist    Artist
		name      sql.NullString
		genre     sql.NullString
		biography sql.NullString
	)
	if err := row.Scan(&artist.ID, &name, &genre, &biography); err != nil {
		return nil, err
	}
	artist.Name = nullStringValue(name)
	artist.Genre = nullStringValue(genre)
	artist.Biography = nullStringValue(biography)
	return &artist, nil
}

// AddArtist inserts a new artist and returns it with its assigned id.
func (m *Manager) AddArtist(in NewArtist) (*Artist, error) {
	id, err := m.insert(`
		INSERT INTO Artist (name, genre, biography)
		VALUES (?, ?, ?)
	`, in.Name, in.Genre, in.Biography)
	if err != nil {
		return nil, fmt.Errorf("failed to add artist: %w", err)
	}

	log.Debug().Int64("artist_id", id).Str("name", in.Name).Msg("Artist added")

	return &Artist{
		ID:        id,
		Name:      in.Name,
		Genre:     in.Genre,
		Biography: in.Biography,
	}, nil
}

// GetArtist retrieves an artist by id. It returns ErrNotFound when no row matches.
func (m *Manager) GetArtist(id int64) (*Artist, error) {
	var artist *Artist
	err := m.withConn(func(conn *sql.DB) error {
		var err error
		artist, err = scanArtist(conn.QueryRow("SELECT "+artistColumns+" FROM Artist WHERE artist_id = ?", id))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("artist %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get artist: %w", classify(err))
	}
	return artist, nil
}

// ListArtists returns every artist ordered by id.
func (m *Manager) ListArtists() ([]Artist, error) {
	var artists []Artist
	err := m.queryRows("SELECT "+artistColumns+" FROM Artist ORDER BY artist_id", nil, func(rows *sql.Rows) error {
		artist, err := scanArtist(rows)
		if err != nil {
			return err
		}
		artists = append(artists, *artist)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

// DeleteArtist removes an artist by id and returns the number of rows deleted.
// Albums referencing the artist are left in place.
func (m *Manager) DeleteArtist(id int64) (int64, error) {
	affected, err := m.execAffected("DELETE FROM Artist WHERE artist_id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete artist: %w", err)
	}

	log.Debug().Int64("artist_id", id).Int64("affected", affected).Msg("Artist delete executed")
	return affected, nil
}
