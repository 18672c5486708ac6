package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Song represents a row of the Song table. Duration is in seconds.
type Song struct {
	ID          int64
	Title       string
	Duration    *int64
	TrackNumber *int64
	AlbumID     *int64
}

// NewSong holds the fields for inserting a song.
type NewSong struct {
	Title       string
	Duration    *int64
	TrackNumber *int64
	AlbumID     *int64
}

const songColumns = "song_id, title, duration, track_number, album_id"

func scanSong(row rowScanner) (*Song, error) {
	var (
		song     Song
		title    sql.NullString
		duration sql.NullInt64
		track    sql.NullInt64
		albumID  sql.NullInt64
	)
	if err := row.Scan(&song.ID, &title, &duration, &track, &albumID); err != nil {
		return nil, err
	}
	song.Title = nullStringValue(title)
	song.Duration = nullInt64ToPtr(duration)
	song.TrackNumber = nullInt64ToPtr(track)
	song.AlbumID = nullInt64ToPtr(albumID)
	return &song, nil
}

func (m *Manager) listSongs(query string, args ...any) ([]Song, error) {
	var songs []Song
	err := m.queryRows(query, args, func(rows *sql.Rows) error {
		song, err := scanSong(rows)
		if err != nil {
			return err
		}
		songs = append(songs, *song)
		return nil
	})
	return songs, err
}

// AddSong inserts a new song and returns it with its assigned id.
func (m *Manager) AddSong(in NewSong) (*Song, error) {
	id, err := m.insert(`
		INSERT INTO Song (title, duration, track_number, album_id)
		VALUES (?, ?, ?, ?)
	`, in.Title, ptrToNullInt64(in.Duration), ptrToNullInt64(in.TrackNumber), ptrToNullInt64(in.AlbumID))
	if err != nil {
		return nil, fmt.Errorf("failed to add song: %w", err)
	}

	log.Debug().Int64("song_id", id).Str("title", in.Title).Msg("Song added")

	return &Song{
		ID:          id,
		Title:       in.Title,
		Duration:    in.Duration,
		TrackNumber: in.TrackNumber,
		AlbumID:     in.AlbumID,
	}, nil
}

// GetSong retrieves a song by id. It returns ErrNotFound when no row matches.
func (m *Manager) GetSong(id int64) (*Song, error) {
	var song *Song
	err := m.withConn(func(conn *sql.DB) error {
		var err error
		song, err = scanSong(conn.QueryRow("SELECT "+songColumns+" FROM Song WHERE song_id = ?", id))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("song %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get song: %w", classify(err))
	}
	return song, nil
}

// ListSongs returns every song ordered by id.
func (m *Manager) ListSongs() ([]Song, error) {
	songs, err := m.listSongs("SELECT " + songColumns + " FROM Song ORDER BY song_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}
	return songs, nil
}

// DeleteSong removes a song by id and returns the number of rows deleted.
func (m *Manager) DeleteSong(id int64) (int64, error) {
	affected, err := m.execAffected("DELETE FROM Song WHERE song_id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete song: %w", err)
	}

	log.Debug().Int64("song_id", id).Int64("affected", affected).Msg("Song delete executed")
	return affected, nil
}

// SearchSongsByTitle returns songs whose title contains keyword.
// Matching follows SQLite LIKE rules: case-insensitive for ASCII letters.
func (m *Manager) SearchSongsByTitle(keyword string) ([]Song, error) {
	songs, err := m.listSongs(
		"SELECT "+songColumns+" FROM Song WHERE title LIKE ? ORDER BY song_id",
		"%"+keyword+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search songs: %w", err)
	}
	return songs, nil
}

// ListSongsSortedByDuration returns all songs ordered by duration.
func (m *Manager) ListSongsSortedByDuration(descending bool) ([]Song, error) {
	songs, err := m.listSongs(
		"SELECT " + songColumns + " FROM Song ORDER BY duration " + sortDirection(descending) + ", song_id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list songs sorted: %w", err)
	}
	return songs, nil
}
