// Package console implements the interactive text menu over the music catalog.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/saltyorg/musicdb/internal/database"
)

// Catalog is the set of catalog operations the menu dispatches to
type Catalog interface {
	ListArtists() ([]database.Artist, error)
	ListAlbums() ([]database.Album, error)
	ListSongs() ([]database.Song, error)

	AddArtist(in database.NewArtist) (*database.Artist, error)
	AddAlbum(in database.NewAlbum) (*database.Album, error)
	AddSong(in database.NewSong) (*database.Song, error)

	GetAlbum(id int64) (*database.Album, error)
	UpdateAlbumTitle(id int64, title string) (int64, error)

	DeleteSong(id int64) (int64, error)
	DeleteAlbum(id int64) (int64, error)
	DeleteArtist(id int64) (int64, error)

	ListSongsByArtist(name string) ([]database.SongWithAlbum, error)
	SearchSongsByTitle(keyword string) ([]database.Song, error)
	ListAlbumsByYear(year int64) ([]database.Album, error)
	ListAlbumsByYearRange(start, end int64) ([]database.Album, error)
	CountSongsPerAlbum() ([]database.Count, error)
	CountAlbumsPerArtist() ([]database.Count, error)
	ListSongsSortedByDuration(descending bool) ([]database.Song, error)
	ListAlbumsSortedByYear(descending bool) ([]database.Album, error)

	DemonstrateTransaction() (*database.TransactionDemo, error)
}

// errInputClosed signals that the input stream ended
var errInputClosed = errors.New("input closed")

// numberError reports a secondary prompt answer that is not an integer.
// It aborts the current command only.
type numberError struct {
	field string
	input string
	err   error
}

func (e *numberError) Error() string {
	return fmt.Sprintf("invalid number %q for %s: %v", e.input, e.field, e.err)
}

func (e *numberError) Unwrap() error {
	return e.err
}

// Client reads menu selections and prompts from in and writes results to out
type Client struct {
	catalog Catalog
	in      *bufio.Scanner
	out     io.Writer
	items   map[int]menuItem
}

// New creates a console client over catalog
func New(catalog Catalog, in io.Reader, out io.Writer) *Client {
	c := &Client{
		catalog: catalog,
		in:      bufio.NewScanner(in),
		out:     out,
		items:   make(map[int]menuItem, len(menu)),
	}
	for _, item := range menu {
		c.items[item.choice] = item
	}
	return c
}

// Run shows the menu and dispatches selections until the user picks 0 or input ends
func (c *Client) Run() error {
	for {
		c.printMenu()

		line, err := c.readLine("Enter your choice: ")
		if errors.Is(err, errInputClosed) {
			c.println()
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.println("Please enter a valid number.")
			continue
		}

		if choice == 0 {
			c.println("Exiting client.")
			return nil
		}

		item, ok := c.items[choice]
		if !ok {
			c.println("Invalid choice. Please try again.")
			continue
		}

		log.Debug().Int("choice", choice).Str("command", item.label).Msg("Dispatching menu command")

		if err := item.run(c); err != nil {
			var numErr *numberError
			switch {
			case errors.Is(err, errInputClosed):
				c.println()
				return nil
			case errors.As(err, &numErr):
				c.printf("Invalid number %q for %s; command aborted.\n", numErr.input, numErr.field)
			default:
				c.printError(item.action, err)
			}
		}
	}
}

func (c *Client) printMenu() {
	c.println()
	c.println("Music Database Client")
	for _, item := range menu {
		c.printf("%d. %s\n", item.choice, item.label)
	}
	c.println("0. Exit")
}

// printError renders a failed catalog operation according to its failure kind
func (c *Client) printError(action string, err error) {
	log.Debug().Err(err).Str("action", action).Msg("Catalog operation failed")

	switch {
	case errors.Is(err, database.ErrConnection):
		c.printf("Error %s: database unavailable: %v\n", action, err)
	case errors.Is(err, database.ErrConstraint):
		c.printf("Error %s: rejected by table constraint: %v\n", action, err)
	case errors.Is(err, database.ErrNotFound):
		c.printf("Error %s: not found: %v\n", action, err)
	default:
		c.printf("Error %s: %v\n", action, err)
	}
}

// readLine prints prompt and returns the next input line without its newline
func (c *Client) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errInputClosed
	}
	return c.in.Text(), nil
}

// readInt prompts for an integer. There is no retry: a bad answer aborts the command.
func (c *Client) readInt(prompt, field string) (int64, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, &numberError{field: field, input: line, err: err}
	}
	return v, nil
}

// readDescending asks for a sort direction; only an explicit yes means descending
func (c *Client) readDescending() (bool, error) {
	line, err := c.readLine("Descending order? (y/n): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "d", "desc":
		return true, nil
	}
	return false, nil
}

func (c *Client) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Client) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}
