package mock

import (
	"context"

	"github.com/fwojciec/startpage"
)

var _ startpage.FaviconResolver = (*FaviconResolver)(nil)

// FaviconResolver is a mock implementation of startpage.FaviconResolver.
type FaviconResolver struct {
	FaviconFn func(ctx context.Context, pageURL string) (string, error)
}

func (r *FaviconResolver) Favicon(ctx context.Context, pageURL string) (string, error) {
	return r.FaviconFn(ctx, pageURL)
}
