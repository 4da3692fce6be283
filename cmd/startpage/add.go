package main

import (
	"fmt"

	"github.com/fwojciec/startpage"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	b := startpage.Bookmark{Title: c.Title, URL: c.URL, Chord: c.Chord}
	if err := deps.Bookmarks.AddBookmark(deps.Ctx, b); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
		return err
	}

	added := deps.Bookmarks.Bookmarks()
	fmt.Fprintf(deps.Stdout, "Added bookmark %q at index %d\n", c.Title, len(added)-1)
	return nil
}
