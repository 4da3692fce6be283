package main

import (
	"fmt"
)

// Run executes the clock command.
func (c *ClockCmd) Run(deps *Dependencies) error {
	face := deps.Clock.Current()
	fmt.Fprintln(deps.Stdout, face.Time)
	fmt.Fprintln(deps.Stdout, face.Date)

	if !c.Copy {
		return nil
	}

	msg, err := deps.Clock.Copy(deps.Ctx, deps.Clipboard)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", msg)
		return err
	}
	fmt.Fprintln(deps.Stdout, msg)
	return nil
}
