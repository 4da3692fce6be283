package main

import (
	"fmt"

	"github.com/fwojciec/startpage"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return startpage.Errorf(startpage.EINVALID, "use --force to confirm deletion")
	}

	bookmarks := deps.Bookmarks.Bookmarks()
	var title string
	if c.Index >= 0 && c.Index < len(bookmarks) {
		title = bookmarks[c.Index].Title
	}

	if err := deps.Bookmarks.DeleteBookmark(deps.Ctx, c.Index); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted bookmark %q\n", title)
	return nil
}
