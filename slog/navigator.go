package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/startpage"
)

var _ startpage.Navigator = (*LoggingNavigator)(nil)

// LoggingNavigator wraps a Navigator with debug logging.
type LoggingNavigator struct {
	next   startpage.Navigator
	logger *slog.Logger
}

// NewLoggingNavigator creates a new LoggingNavigator.
func NewLoggingNavigator(next startpage.Navigator, logger *slog.Logger) *LoggingNavigator {
	return &LoggingNavigator{next: next, logger: logger}
}

// Open logs the URL and delegates to the wrapped navigator.
func (n *LoggingNavigator) Open(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		n.logger.Info("open",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return n.next.Open(ctx, url)
}
