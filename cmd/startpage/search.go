package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/startpage"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.TrimSpace(strings.Join(c.Query, " "))
	if query == "" {
		err := startpage.Errorf(startpage.EINVALID, "empty query")
		fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
		return err
	}

	engine := c.Engine
	if engine == "" {
		engine = deps.Settings.SelectedEngine()
	}

	if c.Print {
		u, _ := deps.Dispatcher.URL(engine, query)
		fmt.Fprintln(deps.Stdout, u)
		return nil
	}

	u, err := deps.Dispatcher.Dispatch(deps.Ctx, deps.Navigator, engine, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Opened %s\n", u)
	return nil
}
