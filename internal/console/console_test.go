package console

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltyorg/musicdb/internal/database"
)

func newCatalog(t *testing.T) (*database.Manager, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "catalog")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	m, err := database.New(filepath.Join(dir, "music.db"))
	require.NoError(t, err)
	require.NoError(t, m.CreateTables())
	require.NoError(t, m.PopulateData())
	return m, dir
}

// failingCatalog serves reads from a real catalog but fails the overridden operations
type failingCatalog struct {
	*database.Manager
}

func (failingCatalog) AddArtist(database.NewArtist) (*database.Artist, error) {
	return nil, fmt.Errorf("failed to add artist: %w: UNIQUE constraint failed: Artist.artist_id", database.ErrConstraint)
}

func (failingCatalog) GetAlbum(id int64) (*database.Album, error) {
	return nil, fmt.Errorf("album %d: %w", id, database.ErrNotFound)
}

// session runs the client over the given input lines and returns everything it printed
func session(t *testing.T, catalog Catalog, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	input := strings.Join(lines, "\n") + "\n"
	require.NoError(t, New(catalog, strings.NewReader(input), &out).Run())
	return out.String()
}

func assertInOrder(t *testing.T, out string, parts ...string) {
	t.Helper()

	pos := 0
	for _, part := range parts {
		idx := strings.Index(out[pos:], part)
		if !assert.GreaterOrEqual(t, idx, 0, "expected %q after offset %d", part, pos) {
			return
		}
		pos += idx + len(part)
	}
}

func TestRun_ExitOnZero(t *testing.T) {
	m, _ := newCatalog(t)

	out := session(t, m, "0")
	assert.Contains(t, out, "Music Database Client")
	assert.Contains(t, out, "19. Demonstrate transaction")
	assert.Contains(t, out, "0. Exit")
	assert.True(t, strings.HasSuffix(out, "Exiting client.\n"))
}

func TestRun_EndOfInputStops(t *testing.T) {
	m, _ := newCatalog(t)

	var out bytes.Buffer
	require.NoError(t, New(m, strings.NewReader(""), &out).Run())
	assert.Equal(t, 1, strings.Count(out.String(), "Music Database Client"))
}

func TestRun_BadSelectionsRedisplayMenu(t *testing.T) {
	m, _ := newCatalog(t)

	out := session(t, m, "abc", "42", "0")
	assertInOrder(t, out,
		"Please enter a valid number.",
		"Invalid choice. Please try again.",
		"Exiting client.",
	)
	assert.Equal(t, 3, strings.Count(out, "Music Database Client"))
}

func TestRun_ListAll(t *testing.T) {
	m, _ := newCatalog(t)

	out := session(t, m, "1", "2", "3", "0")
	assertInOrder(t, out,
		"Artists:", "1: The Beatles (Rock)", "2: Taylor Swift (Pop)",
		"Albums:", "1: Abbey Road (1969)", "2: 1989 (2014)",
		"Songs:", "1: Come Together (259 seconds)", "4: Style (231 seconds)",
	)
}

func TestRun_AddRows(t *testing.T) {
	m, _ := newCatalog(t)

	out := session(t, m,
		"4", "X", "Y", "Z",
		"5", "Let It Be", "1970", "1",
		"6", "Get Back", "189", "12", "3",
		"1", "3",
		"0",
	)
	assertInOrder(t, out,
		"Artist added with id 3.",
		"Album added with id 3.",
		"Song added with id 5.",
		"3: X (Y)",
		"5: Get Back (189 seconds)",
	)

	artist, err := m.GetArtist(3)
	require.NoError(t, err)
	assert.Equal(t, "Z", artist.Biography)
}

func TestRun_UpdateAndDelete(t *testing.T) {
	m, _ := newCatalog(t)

	out := session(t, m,
		"7", "2", "NewTitle",
		"7", "99", "Nope",
		"8", "4",
		"8", "4",
		"9", "1",
		"10", "2",
		"2",
		"0",
	)
	assertInOrder(t, out,
		"Updated 1 album(s).",
		"2: NewTitle (2014)",
		"Updated 0 album(s).",
		"Deleted 1 song(s).",
		"Deleted 0 song(s).",
		"Deleted 1 album(s).",
		"Deleted 1 artist(s).",
		"2: NewTitle (2014)",
	)
	assert.NotContains(t, out, "1: Abbey Road")
}

func TestRun_Reports(t *testing.T) {
	m, _ := newCatalog(t)

	out := session(t, m,
		"11", "The Beatles",
		"12", "space",
		"13", "2014",
		"14", "1960", "1970",
		"15",
		"16",
		"0",
	)
	assertInOrder(t, out,
		"Come Together - Abbey Road", "Something - Abbey Road",
		"3: Blank Space",
		"2: 1989 (2014)",
		"1: Abbey Road (1969)",
		"Abbey Road: 2", "1989: 2",
		"The Beatles: 1", "Taylor Swift: 1",
	)
	assert.Equal(t, 1, strings.Count(out, "2: 1989 (2014)"))
}

func TestRun_SortedListings(t *testing.T) {
	m, _ := newCatalog(t)

	out := session(t, m, "17", "y", "18", "n", "0")
	assertInOrder(t, out,
		"Come Together: 259s", "Blank Space: 231s", "Style: 231s", "Something: 182s",
		"Abbey Road: 1969", "1989: 2014",
	)
}

func TestRun_EmptyResults(t *testing.T) {
	m, _ := newCatalog(t)

	out := session(t, m, "11", "Nobody", "0")
	assert.Contains(t, out, noResults)
}

func TestRun_DemonstrateTransaction(t *testing.T) {
	m, _ := newCatalog(t)

	out := session(t, m, "19", "1", "0")
	assertInOrder(t, out,
		"(3 artists inside the transaction) but will rollback",
		"Rolled back transaction",
		"Artists before: 2, after: 2",
		"2: Taylor Swift (Pop)",
	)
	assert.NotContains(t, out, "Temp Artist")
}

func TestRun_NonNumericSecondaryPromptAbortsCommand(t *testing.T) {
	m, _ := newCatalog(t)

	out := session(t, m, "5", "Help!", "nineteen sixty-five", "1", "0")
	assertInOrder(t, out,
		`Invalid number "nineteen sixty-five" for release year; command aborted.`,
		"Artists:",
		"Exiting client.",
	)

	albums, err := m.ListAlbums()
	require.NoError(t, err)
	assert.Len(t, albums, 2)
}

func TestRun_ConstraintViolationIsReported(t *testing.T) {
	m, _ := newCatalog(t)

	out := session(t, failingCatalog{m}, "4", "X", "Y", "Z", "1", "0")
	assertInOrder(t, out,
		"Error adding artist: rejected by table constraint: failed to add artist",
		"2: Taylor Swift (Pop)",
		"Exiting client.",
	)
}

func TestRun_NotFoundIsReported(t *testing.T) {
	m, _ := newCatalog(t)

	out := session(t, failingCatalog{m}, "7", "2", "Renamed", "0")
	assertInOrder(t, out,
		"Updated 1 album(s).",
		"Error updating album title: not found: album 2",
		"Exiting client.",
	)

	album, err := m.GetAlbum(2)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", album.Title)
}

func TestRun_EmptyAlbumTitleIsStored(t *testing.T) {
	m, _ := newCatalog(t)

	out := session(t, m, "7", "1", "", "0")
	assertInOrder(t, out, "Updated 1 album(s).", "1:  (1969)")

	album, err := m.GetAlbum(1)
	require.NoError(t, err)
	assert.Empty(t, album.Title)
}

func TestRun_ConnectionFailureIsReported(t *testing.T) {
	m, dir := newCatalog(t)
	require.NoError(t, os.RemoveAll(dir))

	out := session(t, m, "1", "0")
	assert.Contains(t, out, "Error retrieving artists: database unavailable")
	assert.Contains(t, out, "Exiting client.")
}

func TestRun_InputEndsMidCommand(t *testing.T) {
	m, _ := newCatalog(t)

	var out bytes.Buffer
	require.NoError(t, New(m, strings.NewReader("4\nOnly a name\n"), &out).Run())

	artists, err := m.ListArtists()
	require.NoError(t, err)
	assert.Len(t, artists, 2)
}
