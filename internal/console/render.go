package console

import (
	"strconv"

	"github.com/saltyorg/musicdb/internal/database"
)

const noResults = "No results."

// optionalInt formats a nullable column, rendering NULL as "?"
func optionalInt(v *int64) string {
	if v == nil {
		return "?"
	}
	return strconv.FormatInt(*v, 10)
}

func (c *Client) renderArtists(artists []database.Artist) {
	if len(artists) == 0 {
		c.println(noResults)
		return
	}
	for _, a := range artists {
		if a.Genre == "" {
			c.printf("%d: %s\n", a.ID, a.Name)
			continue
		}
		c.printf("%d: %s (%s)\n", a.ID, a.Name, a.Genre)
	}
}

func (c *Client) renderAlbums(albums []database.Album) {
	if len(albums) == 0 {
		c.println(noResults)
		return
	}
	for _, a := range albums {
		c.printf("%d: %s (%s)\n", a.ID, a.Title, optionalInt(a.ReleaseYear))
	}
}

func (c *Client) renderSongs(songs []database.Song) {
	if len(songs) == 0 {
		c.println(noResults)
		return
	}
	for _, s := range songs {
		c.printf("%d: %s (%s seconds)\n", s.ID, s.Title, optionalInt(s.Duration))
	}
}

func (c *Client) renderCounts(counts []database.Count) {
	if len(counts) == 0 {
		c.println(noResults)
		return
	}
	for _, n := range counts {
		c.printf("%s: %d\n", n.Label, n.Count)
	}
}
