package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Album represents a row of the Album table.
type Album struct {
	ID          int64
	Title       string
	ReleaseYear *int64
	ArtistID    *int64
}

// NewAlbum holds the fields for inserting an album.
type NewAlbum struct {
	Title       string
	ReleaseYear *int64
	ArtistID    *int64
}

const albumColumns = "album_id, title, release_year, artist_id"

func scanAlbum(row rowScanner) (*Album, error) {
	var (
		album    Album
		title    sql.NullString
		year     sql.NullInt64
		artistID sql.NullInt64
	)
	if err := row.Scan(&album.ID, &title, &year, &artistID); err != nil {
		return nil, err
	}
	album.Title = nullStringValue(title)
	album.ReleaseYear = nullInt64ToPtr(year)
	album.ArtistID = nullInt64ToPtr(artistID)
	return &album, nil
}

// listAlbums runs an album query and collects the rows
func (m *Manager) listAlbums(query string, args ...any) ([]Album, error) {
	var albums []Album
	err := m.queryRows(query, args, func(rows *sql.Rows) error {
		album, err := scanAlbum(rows)
		if err != nil {
			return err
		}
		albums = append(albums, *album)
		return nil
	})
	return albums, err
}

// AddAlbum inserts a new album and returns it with its assigned id.
// The artist id is not checked against the Artist table.
func (m *Manager) AddAlbum(in NewAlbum) (*Album, error) {
	id, err := m.insert(`
		INSERT INTO Album (title, release_year, artist_id)
		VALUES (?, ?, ?)
	`, in.Title, ptrToNullInt64(in.ReleaseYear), ptrToNullInt64(in.ArtistID))
	if err != nil {
		return nil, fmt.Errorf("failed to add album: %w", err)
	}

	log.Debug().Int64("album_id", id).Str("title", in.Title).Msg("Album added")

	return &Album{
		ID:          id,
		Title:       in.Title,
		ReleaseYear: in.ReleaseYear,
		ArtistID:    in.ArtistID,
	}, nil
}

// GetAlbum retrieves an album by id. It returns ErrNotFound when no row matches.
func (m *Manager) GetAlbum(id int64) (*Album, error) {
	var album *Album
	err := m.withConn(func(conn *sql.DB) error {
		var err error
		album, err = scanAlbum(conn.QueryRow("SELECT "+albumColumns+" FROM Album WHERE album_id = ?", id))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("album %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get album: %w", classify(err))
	}
	return album, nil
}

// ListAlbums returns every album ordered by id.
func (m *Manager) ListAlbums() ([]Album, error) {
	albums, err := m.listAlbums("SELECT " + albumColumns + " FROM Album ORDER BY album_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	return albums, nil
}

// UpdateAlbumTitle sets the title of one album and returns the number of rows changed.
// A missing id yields 0 and no error.
func (m *Manager) UpdateAlbumTitle(id int64, title string) (int64, error) {
	affected, err := m.execAffected("UPDATE Album SET title = ? WHERE album_id = ?", title, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update album title: %w", err)
	}

	log.Debug().Int64("album_id", id).Int64("affected", affected).Msg("Album title update executed")
	return affected, nil
}

// DeleteAlbum removes an album by id and returns the number of rows deleted.
// Songs referencing the album are left in place.
func (m *Manager) DeleteAlbum(id int64) (int64, error) {
	affected, err := m.execAffected("DELETE FROM Album WHERE album_id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete album: %w", err)
	}

	log.Debug().Int64("album_id", id).Int64("affected", affected).Msg("Album delete executed")
	return affected, nil
}

// ListAlbumsByYear returns albums released in exactly the given year.
func (m *Manager) ListAlbumsByYear(year int64) ([]Album, error) {
	albums, err := m.listAlbums(
		"SELECT "+albumColumns+" FROM Album WHERE release_year = ? ORDER BY album_id",
		year,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list albums by year: %w", err)
	}
	return albums, nil
}

// ListAlbumsByYearRange returns albums released between start and end, both inclusive.
func (m *Manager) ListAlbumsByYearRange(start, end int64) ([]Album, error) {
	albums, err := m.listAlbums(
		"SELECT "+albumColumns+" FROM Album WHERE release_year BETWEEN ? AND ? ORDER BY album_id",
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list albums by range: %w", err)
	}
	return albums, nil
}

// ListAlbumsSortedByYear returns all albums ordered by release year.
func (m *Manager) ListAlbumsSortedByYear(descending bool) ([]Album, error) {
	albums, err := m.listAlbums(
		"SELECT " + albumColumns + " FROM Album ORDER BY release_year " + sortDirection(descending) + ", album_id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list albums sorted: %w", err)
	}
	return albums, nil
}

// sortDirection maps a flag onto one of two fixed ORDER BY keywords
func sortDirection(descending bool) string {
	if descending {
		return "DESC"
	}
	return "ASC"
}
