package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/startpage"
)

// Run executes the import command. The current list is replaced.
func (c *ImportCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	format, err := resolveFormat(c.Format, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
		return err
	}

	bookmarks, err := decoders[format](data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
		return err
	}

	if err := deps.Bookmarks.ImportBookmarks(deps.Ctx, bookmarks); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d bookmarks from %s\n", len(bookmarks), format)
	return nil
}
