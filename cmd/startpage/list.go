package main

import (
	"fmt"

	"github.com/fwojciec/startpage"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	bookmarks := deps.Bookmarks.Bookmarks()
	if len(bookmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No bookmarks. Use 'startpage add' to create one.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, startpage.FormatBookmarks(bookmarks))
	return nil
}
