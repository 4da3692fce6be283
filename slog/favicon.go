package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/startpage"
)

var _ startpage.FaviconResolver = (*LoggingFaviconResolver)(nil)

// LoggingFaviconResolver wraps a FaviconResolver with debug logging.
type LoggingFaviconResolver struct {
	next   startpage.FaviconResolver
	logger *slog.Logger
}

// NewLoggingFaviconResolver creates a new LoggingFaviconResolver.
func NewLoggingFaviconResolver(next startpage.FaviconResolver, logger *slog.Logger) *LoggingFaviconResolver {
	return &LoggingFaviconResolver{next: next, logger: logger}
}

// Favicon delegates to the wrapped resolver and logs the result.
func (r *LoggingFaviconResolver) Favicon(ctx context.Context, pageURL string) (icon string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("favicon",
			"url", pageURL,
			"icon", icon,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Favicon(ctx, pageURL)
}
