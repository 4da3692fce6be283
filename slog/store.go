package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/startpage"
)

var _ startpage.Store = (*LoggingStore)(nil)

// LoggingStore wraps a Store with debug logging. Values are not logged,
// only their sizes.
type LoggingStore struct {
	next   startpage.Store
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next startpage.Store, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

func (s *LoggingStore) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("store get",
			"key", key,
			"found", ok,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Get(ctx, key)
}

func (s *LoggingStore) Set(ctx context.Context, key, value string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("store set",
			"key", key,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Set(ctx, key, value)
}

func (s *LoggingStore) Remove(ctx context.Context, key string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("store remove",
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Remove(ctx, key)
}
