package main

import (
	"fmt"

	"github.com/fwojciec/startpage"
)

// Run executes the edit command. Fields left empty keep their value.
func (c *EditCmd) Run(deps *Dependencies) error {
	bookmarks := deps.Bookmarks.Bookmarks()
	if c.Index < 0 || c.Index >= len(bookmarks) {
		err := startpage.Errorf(startpage.EINVALID, "invalid index %d", c.Index)
		fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
		return err
	}

	b := bookmarks[c.Index]
	if c.Title != "" {
		b.Title = c.Title
	}
	if c.URL != "" {
		b.URL = c.URL
	}
	if c.Chord != "" {
		b.Chord = c.Chord
	}
	if c.Clear {
		b.Chord = ""
	}

	if err := deps.Bookmarks.UpdateBookmark(deps.Ctx, c.Index, b); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated bookmark %d\n", c.Index)
	return nil
}
