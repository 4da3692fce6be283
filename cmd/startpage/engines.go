package main

import (
	"fmt"
)

// Run executes the engines command. The selected engine is marked with *.
func (c *EnginesCmd) Run(deps *Dependencies) error {
	selected := deps.Settings.SelectedEngine()
	for _, e := range deps.Dispatcher.Engines() {
		mark := " "
		if e.ID == selected {
			mark = "*"
		}
		key := "-"
		if e.Key != "" {
			key = "Alt+" + e.Key
		}
		fmt.Fprintf(deps.Stdout, "%s %-12s %-6s %s\n", mark, e.ID, key, e.Name)
	}
	return nil
}
