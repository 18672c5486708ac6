package database

import (
	"database/sql"
	"fmt"
)

// SongWithAlbum pairs a song title with the title of its album
type SongWithAlbum struct {
	SongTitle  string
	AlbumTitle string
}

// Count is one row of a grouped count report
type Count struct {
	ID    int64
	Label string
	Count int64
}

// ListSongsByArtist returns the songs on albums of the artist with exactly the given name.
func (m *Manager) ListSongsByArtist(name string) ([]SongWithAlbum, error) {
	var songs []SongWithAlbum
	err := m.queryRows(`
		SELECT s.title AS song_title, a.title AS album_title
		FROM Song s
		JOIN Album a ON s.album_id = a.album_id
		JOIN Artist ar ON a.artist_id = ar.artist_id
		WHERE ar.name = ?
		ORDER BY a.album_id, s.track_number, s.song_id
	`, []any{name}, func(rows *sql.Rows) error {
		var song, album sql.NullString
		if err := rows.Scan(&song, &album); err != nil {
			return err
		}
		songs = append(songs, SongWithAlbum{
			SongTitle:  nullStringValue(song),
			AlbumTitle: nullStringValue(album),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list songs by artist: %w", err)
	}
	return songs, nil
}

// CountSongsPerAlbum returns the number of songs on each album, including albums with none.
func (m *Manager) CountSongsPerAlbum() ([]Count, error) {
	counts, err := m.counts(`
		SELECT a.album_id, a.title AS album_title, COUNT(s.song_id) AS song_count
		FROM Album a
		LEFT JOIN Song s ON a.album_id = s.album_id
		GROUP BY a.album_id
		ORDER BY a.album_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count songs per album: %w", err)
	}
	return counts, nil
}

// CountAlbumsPerArtist returns the number of albums for each artist, including artists with none.
func (m *Manager) CountAlbumsPerArtist() ([]Count, error) {
	counts, err := m.counts(`
		SELECT ar.artist_id, ar.name AS artist_name, COUNT(a.album_id) AS album_count
		FROM Artist ar
		LEFT JOIN Album a ON ar.artist_id = a.artist_id
		GROUP BY ar.artist_id
		ORDER BY ar.artist_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count albums per artist: %w", err)
	}
	return counts, nil
}

func (m *Manager) counts(query string) ([]Count, error) {
	var counts []Count
	err := m.queryRows(query, nil, func(rows *sql.Rows) error {
		var (
			c     Count
			label sql.NullString
		)
		if err := rows.Scan(&c.ID, &label, &c.Count); err != nil {
			return err
		}
		c.Label = nullStringValue(label)
		counts = append(counts, c)
		return nil
	})
	return counts, err
}
