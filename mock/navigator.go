package mock

import (
	"context"

	"github.com/fwojciec/startpage"
)

var _ startpage.Navigator = (*Navigator)(nil)

// Navigator is a mock implementation of startpage.Navigator.
type Navigator struct {
	OpenFn func(ctx context.Context, url string) error
}

func (n *Navigator) Open(ctx context.Context, url string) error {
	return n.OpenFn(ctx, url)
}

var _ startpage.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of startpage.Clipboard.
type Clipboard struct {
	WriteTextFn func(ctx context.Context, text string) error
}

func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	return c.WriteTextFn(ctx, text)
}
