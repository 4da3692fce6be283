package main

import (
	"fmt"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	format, err := resolveFormat(c.Format, c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
		return err
	}

	var data []byte
	if enc, ok := encoders[format]; ok {
		data, err = enc(deps.Bookmarks.Bookmarks())
	} else {
		data, err = deps.Bookmarks.ExportBookmarks(deps.Ctx)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		_, err := deps.Stdout.Write(data)
		return err
	}

	if err := fs.WriteFile(c.Output, data); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Exported %d bookmarks to %s\n", len(deps.Bookmarks.Bookmarks()), c.Output)
	return nil
}
