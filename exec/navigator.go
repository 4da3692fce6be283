// Package exec opens URLs in the desktop browser by running the platform's
// opener command.
package exec

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/fwojciec/startpage"
)

var _ startpage.Navigator = (*Navigator)(nil)

// Navigator implements startpage.Navigator with xdg-open, open or
// rundll32 depending on the operating system.
type Navigator struct {
	// Command builds the opener invocation. Defaults to OpenerCommand.
	Command func(ctx context.Context, url string) *exec.Cmd
}

// NewNavigator returns a Navigator for the running operating system.
func NewNavigator() *Navigator {
	return &Navigator{Command: OpenerCommand}
}

// OpenerCommand returns the command that opens url on runtime.GOOS.
func OpenerCommand(ctx context.Context, url string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.CommandContext(ctx, "open", url)
	case "windows":
		return exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.CommandContext(ctx, "xdg-open", url)
	}
}

// Open launches the browser on url and waits for the opener to exit.
func (n *Navigator) Open(ctx context.Context, url string) error {
	if url == "" {
		return startpage.Errorf(startpage.EINVALID, "url required")
	}
	command := n.Command
	if command == nil {
		command = OpenerCommand
	}
	if out, err := command(ctx, url).CombinedOutput(); err != nil {
		return fmt.Errorf("opening %s: %w: %s", url, err, out)
	}
	return nil
}
