package console

import (
	"github.com/saltyorg/musicdb/internal/database"
)

type menuItem struct {
	choice int
	label  string
	// action completes "Error <action>: ..." when the command fails
	action string
	run    func(*Client) error
}

var menu = []menuItem{
	{1, "List all artists", "retrieving artists", (*Client).listArtists},
	{2, "List all albums", "retrieving albums", (*Client).listAlbums},
	{3, "List all songs", "retrieving songs", (*Client).listSongs},
	{4, "Add artist", "adding artist", (*Client).addArtist},
	{5, "Add album", "adding album", (*Client).addAlbum},
	{6, "Add song", "adding song", (*Client).addSong},
	{7, "Update album title", "updating album title", (*Client).updateAlbumTitle},
	{8, "Delete song", "deleting song", (*Client).deleteSong},
	{9, "Delete album", "deleting album", (*Client).deleteAlbum},
	{10, "Delete artist", "deleting artist", (*Client).deleteArtist},
	{11, "List songs by artist", "listing songs by artist", (*Client).listSongsByArtist},
	{12, "Search songs by title", "searching songs", (*Client).searchSongsByTitle},
	{13, "List albums by year", "listing albums by year", (*Client).listAlbumsByYear},
	{14, "List albums by year range", "listing albums by range", (*Client).listAlbumsByYearRange},
	{15, "Count songs per album", "counting songs per album", (*Client).countSongsPerAlbum},
	{16, "Count albums per artist", "counting albums per artist", (*Client).countAlbumsPerArtist},
	{17, "List songs sorted by duration", "listing songs sorted", (*Client).listSongsSortedByDuration},
	{18, "List albums sorted by year", "listing albums sorted", (*Client).listAlbumsSortedByYear},
	{19, "Demonstrate transaction", "in transaction demo", (*Client).demonstrateTransaction},
}

func (c *Client) listArtists() error {
	artists, err := c.catalog.ListArtists()
	if err != nil {
		return err
	}
	c.println()
	c.println("Artists:")
	c.renderArtists(artists)
	return nil
}

func (c *Client) listAlbums() error {
	albums, err := c.catalog.ListAlbums()
	if err != nil {
		return err
	}
	c.println()
	c.println("Albums:")
	c.renderAlbums(albums)
	return nil
}

func (c *Client) listSongs() error {
	songs, err := c.catalog.ListSongs()
	if err != nil {
		return err
	}
	c.println()
	c.println("Songs:")
	c.renderSongs(songs)
	return nil
}

func (c *Client) addArtist() error {
	name, err := c.readLine("Artist name: ")
	if err != nil {
		return err
	}
	genre, err := c.readLine("Genre: ")
	if err != nil {
		return err
	}
	biography, err := c.readLine("Biography: ")
	if err != nil {
		return err
	}

	artist, err := c.catalog.AddArtist(database.NewArtist{Name: name, Genre: genre, Biography: biography})
	if err != nil {
		return err
	}
	c.printf("Artist added with id %d.\n", artist.ID)
	return nil
}

func (c *Client) addAlbum() error {
	title, err := c.readLine("Album title: ")
	if err != nil {
		return err
	}
	year, err := c.readInt("Release year: ", "release year")
	if err != nil {
		return err
	}
	artistID, err := c.readInt("Artist ID: ", "artist id")
	if err != nil {
		return err
	}

	album, err := c.catalog.AddAlbum(database.NewAlbum{Title: title, ReleaseYear: &year, ArtistID: &artistID})
	if err != nil {
		return err
	}
	c.printf("Album added with id %d.\n", album.ID)
	return nil
}

func (c *Client) addSong() error {
	title, err := c.readLine("Song title: ")
	if err != nil {
		return err
	}
	duration, err := c.readInt("Duration (seconds): ", "duration")
	if err != nil {
		return err
	}
	track, err := c.readInt("Track number: ", "track number")
	if err != nil {
		return err
	}
	albumID, err := c.readInt("Album ID: ", "album id")
	if err != nil {
		return err
	}

	song, err := c.catalog.AddSong(database.NewSong{
		Title:       title,
		Duration:    &duration,
		TrackNumber: &track,
		AlbumID:     &albumID,
	})
	if err != nil {
		return err
	}
	c.printf("Song added with id %d.\n", song.ID)
	return nil
}

func (c *Client) updateAlbumTitle() error {
	id, err := c.readInt("Album ID: ", "album id")
	if err != nil {
		return err
	}
	title, err := c.readLine("New title: ")
	if err != nil {
		return err
	}

	affected, err := c.catalog.UpdateAlbumTitle(id, title)
	if err != nil {
		return err
	}
	c.printf("Updated %d album(s).\n", affected)
	if affected == 0 {
		return nil
	}

	album, err := c.catalog.GetAlbum(id)
	if err != nil {
		return err
	}
	c.renderAlbums([]database.Album{*album})
	return nil
}

func (c *Client) deleteSong() error {
	return c.deleteByID("Song ID: ", "song id", "song(s)", c.catalog.DeleteSong)
}

func (c *Client) deleteAlbum() error {
	return c.deleteByID("Album ID: ", "album id", "album(s)", c.catalog.DeleteAlbum)
}

func (c *Client) deleteArtist() error {
	return c.deleteByID("Artist ID: ", "artist id", "artist(s)", c.catalog.DeleteArtist)
}

func (c *Client) deleteByID(prompt, field, noun string, del func(int64) (int64, error)) error {
	id, err := c.readInt(prompt, field)
	if err != nil {
		return err
	}
	affected, err := del(id)
	if err != nil {
		return err
	}
	c.printf("Deleted %d %s.\n", affected, noun)
	return nil
}

func (c *Client) listSongsByArtist() error {
	name, err := c.readLine("Artist name: ")
	if err != nil {
		return err
	}
	songs, err := c.catalog.ListSongsByArtist(name)
	if err != nil {
		return err
	}
	if len(songs) == 0 {
		c.println(noResults)
		return nil
	}
	for _, s := range songs {
		c.printf("%s - %s\n", s.SongTitle, s.AlbumTitle)
	}
	return nil
}

func (c *Client) searchSongsByTitle() error {
	keyword, err := c.readLine("Keyword: ")
	if err != nil {
		return err
	}
	songs, err := c.catalog.SearchSongsByTitle(keyword)
	if err != nil {
		return err
	}
	if len(songs) == 0 {
		c.println(noResults)
		return nil
	}
	for _, s := range songs {
		c.printf("%d: %s\n", s.ID, s.Title)
	}
	return nil
}

func (c *Client) listAlbumsByYear() error {
	year, err := c.readInt("Year: ", "year")
	if err != nil {
		return err
	}
	albums, err := c.catalog.ListAlbumsByYear(year)
	if err != nil {
		return err
	}
	c.renderAlbums(albums)
	return nil
}

func (c *Client) listAlbumsByYearRange() error {
	start, err := c.readInt("Start year: ", "start year")
	if err != nil {
		return err
	}
	end, err := c.readInt("End year: ", "end year")
	if err != nil {
		return err
	}
	albums, err := c.catalog.ListAlbumsByYearRange(start, end)
	if err != nil {
		return err
	}
	c.renderAlbums(albums)
	return nil
}

func (c *Client) countSongsPerAlbum() error {
	counts, err := c.catalog.CountSongsPerAlbum()
	if err != nil {
		return err
	}
	c.renderCounts(counts)
	return nil
}

func (c *Client) countAlbumsPerArtist() error {
	counts, err := c.catalog.CountAlbumsPerArtist()
	if err != nil {
		return err
	}
	c.renderCounts(counts)
	return nil
}

func (c *Client) listSongsSortedByDuration() error {
	descending, err := c.readDescending()
	if err != nil {
		return err
	}
	songs, err := c.catalog.ListSongsSortedByDuration(descending)
	if err != nil {
		return err
	}
	if len(songs) == 0 {
		c.println(noResults)
		return nil
	}
	for _, s := range songs {
		c.printf("%s: %ss\n", s.Title, optionalInt(s.Duration))
	}
	return nil
}

func (c *Client) listAlbumsSortedByYear() error {
	descending, err := c.readDescending()
	if err != nil {
		return err
	}
	albums, err := c.catalog.ListAlbumsSortedByYear(descending)
	if err != nil {
		return err
	}
	if len(albums) == 0 {
		c.println(noResults)
		return nil
	}
	for _, a := range albums {
		c.printf("%s: %s\n", a.Title, optionalInt(a.ReleaseYear))
	}
	return nil
}

func (c *Client) demonstrateTransaction() error {
	demo, err := c.catalog.DemonstrateTransaction()
	if err != nil {
		return err
	}
	c.printf("Temporary artist added with id %d (%d artists inside the transaction) but will rollback\n",
		demo.TempArtistID, demo.CountDuring)
	c.println("Rolled back transaction")
	c.printf("Artists before: %d, after: %d\n", demo.CountBefore, demo.CountAfter)
	return nil
}
