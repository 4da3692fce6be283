// Package clipboard writes to the system clipboard.
package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/startpage"
)

var _ startpage.Clipboard = (*Clipboard)(nil)

// Clipboard implements startpage.Clipboard using xclip, xsel, wl-copy,
// pbcopy or the Windows API, whichever the platform provides.
type Clipboard struct {
	writeAll func(string) error
}

// New returns a Clipboard backed by the system clipboard.
func New() *Clipboard {
	return NewWithWriter(writeSystem)
}

// NewWithWriter returns a Clipboard that hands text to write.
func NewWithWriter(write func(string) error) *Clipboard {
	return &Clipboard{writeAll: write}
}

func writeSystem(text string) error {
	if clipboard.Unsupported {
		return startpage.Errorf(startpage.ENOTFOUND, "no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// WriteText replaces the clipboard contents with text.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.writeAll(text)
}
