package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/app"
	"github.com/fwojciec/startpage/bloom"
	"github.com/fwojciec/startpage/favicon"
	"github.com/fwojciec/startpage/goquery"
	sphttp "github.com/fwojciec/startpage/http"
	spslog "github.com/fwojciec/startpage/slog"
	"golang.org/x/sync/errgroup"
)

// failedOrigins sizes the filter of origins whose favicon lookup failed.
const failedOrigins = 1000

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Config.Server.Addr
	}

	appOpts := []app.Option{app.WithLogger(deps.Logger)}
	for format, dec := range decoders {
		appOpts = append(appOpts, app.WithDecoder(format, dec))
	}
	controller := app.NewController(deps.Bookmarks, deps.Settings, deps.Dispatcher, deps.Clock, appOpts...)

	opts := []sphttp.ServerOption{sphttp.WithLogger(deps.Logger)}
	for format, enc := range encoders {
		opts = append(opts, sphttp.WithEncoder(format, enc))
	}
	server := sphttp.NewServer(controller, deps.Bookmarks, deps.Settings, deps.Dispatcher, opts...)

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		return server.Run(ctx, addr)
	})
	g.Go(func() error {
		return deps.Clock.Run(ctx, server.BroadcastClock)
	})
	if deps.Config.Favicons.Enabled && !c.NoFavicons {
		resolver := newFaviconResolver(deps.Config.Favicons, deps.Logger)
		g.Go(func() error {
			return refreshFavicons(ctx, controller, resolver, server, deps.Logger)
		})
	}

	fmt.Fprintf(deps.Stdout, "Serving start page at http://%s\n", addr)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	return nil
}

func newFaviconResolver(cfg startpage.FaviconsConfig, logger *slog.Logger) *favicon.Resolver {
	fetcher := spslog.NewLoggingFetcher(
		sphttp.NewRetryFetcher(sphttp.NewFetcher(), sphttp.WithRetryLogger(logger)),
		logger,
	)
	finder := spslog.NewLoggingFaviconResolver(goquery.NewFaviconFinder(fetcher), logger)
	return favicon.NewResolver(finder,
		favicon.WithRPS(cfg.RPS),
		favicon.WithConcurrency(cfg.Concurrency),
		favicon.WithFailedFilter(bloom.NewFilter(failedOrigins, 0.01)),
		favicon.WithLogger(logger),
	)
}

// refreshFavicons resolves icons for the current bookmarks and again after
// every change, pushing the new view to open pages.
func refreshFavicons(ctx context.Context, controller *app.Controller, resolver *favicon.Resolver, server *sphttp.Server, logger *slog.Logger) error {
	for {
		icons, err := resolver.ResolveAll(ctx, controller.Bookmarks())
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			logger.Warn("favicon refresh failed", "err", err)
		}
		controller.SetFavicons(icons)
		server.BroadcastView(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-controller.Changes():
		}
	}
}
