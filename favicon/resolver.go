// Package favicon resolves bookmark icons. Pages are fetched at a bounded
// rate per domain; origins that failed once fall straight back to the icon
// service.
package favicon

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/bloom"
	"golang.org/x/sync/errgroup"
)

// Defaults for NewResolver.
const (
	DefaultRPS         = 1.0
	DefaultConcurrency = 4
)

var _ startpage.FaviconResolver = (*Resolver)(nil)

// Resolver finds icons with a page-level finder and degrades to the icon
// service URL whenever that fails.
type Resolver struct {
	finder      startpage.FaviconResolver
	limiter     *DomainLimiter
	failed      *bloom.Filter
	concurrency int
	logger      *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRPS sets the per-domain request rate.
func WithRPS(rps float64) Option {
	return func(r *Resolver) {
		r.limiter = NewDomainLimiter(rps)
	}
}

// WithConcurrency sets how many pages ResolveAll fetches at once.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		r.concurrency = n
	}
}

// WithFailedFilter replaces the filter of failed origins.
func WithFailedFilter(f *bloom.Filter) Option {
	return func(r *Resolver) {
		r.failed = f
	}
}

// WithLogger sets the logger for failed lookups.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver over finder.
func NewResolver(finder startpage.FaviconResolver, opts ...Option) *Resolver {
	r := &Resolver{
		finder:      finder,
		limiter:     NewDomainLimiter(DefaultRPS),
		failed:      bloom.NewFilter(1000, 0.01),
		concurrency: DefaultConcurrency,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.concurrency < 1 {
		r.concurrency = 1
	}
	return r
}

// Favicon returns an icon URL for pageURL. Lookup failures are remembered
// per origin and answered with startpage.FaviconURL. Only an unusable
// pageURL or a canceled context is an error.
func (r *Resolver) Favicon(ctx context.Context, pageURL string) (string, error) {
	origin, ok := startpage.Origin(pageURL)
	if !ok {
		return "", startpage.Errorf(startpage.EINVALID, "not an absolute URL: %q", pageURL)
	}
	fallback := startpage.FaviconURL(pageURL)
	if r.failed.Test(origin) {
		return fallback, nil
	}

	if err := r.limiter.Wait(ctx, Domain(pageURL)); err != nil {
		return "", err
	}

	icon, err := r.finder.Favicon(ctx, pageURL)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		r.logger.Debug("favicon lookup failed", "url", pageURL, "err", err)
		r.failed.Add(origin)
		return fallback, nil
	}
	return icon, nil
}

// ResolveAll resolves icons for every bookmark concurrently and returns them
// keyed by URL. Bookmarks without a usable URL are left out. The map holds
// whatever was resolved when ctx ends.
func (r *Resolver) ResolveAll(ctx context.Context, bookmarks []startpage.Bookmark) (map[string]string, error) {
	var (
		mu    sync.Mutex
		icons = make(map[string]string, len(bookmarks))
		seen  = make(map[string]bool, len(bookmarks))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, b := range bookmarks {
		if seen[b.URL] {
			continue
		}
		seen[b.URL] = true

		pageURL := b.URL
		g.Go(func() error {
			icon, err := r.Favicon(gctx, pageURL)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				return nil
			}
			mu.Lock()
			icons[pageURL] = icon
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	return icons, err
}

// Forget clears the failed origins so the next refresh retries them.
func (r *Resolver) Forget() {
	r.failed.Reset()
}
