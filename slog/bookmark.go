package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/startpage"
)

var _ startpage.BookmarkService = (*LoggingBookmarkService)(nil)

// LoggingBookmarkService wraps a BookmarkService, logging every mutation.
type LoggingBookmarkService struct {
	next   startpage.BookmarkService
	logger *slog.Logger
}

// NewLoggingBookmarkService creates a new LoggingBookmarkService.
func NewLoggingBookmarkService(next startpage.BookmarkService, logger *slog.Logger) *LoggingBookmarkService {
	return &LoggingBookmarkService{next: next, logger: logger}
}

// Bookmarks delegates to the wrapped service without logging; it is called
// on every render and keystroke.
func (s *LoggingBookmarkService) Bookmarks() []startpage.Bookmark {
	return s.next.Bookmarks()
}

func (s *LoggingBookmarkService) AddBookmark(ctx context.Context, b startpage.Bookmark) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("add bookmark",
			"title", b.Title,
			"url", b.URL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.AddBookmark(ctx, b)
}

func (s *LoggingBookmarkService) UpdateBookmark(ctx context.Context, index int, b startpage.Bookmark) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("update bookmark",
			"index", index,
			"title", b.Title,
			"url", b.URL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateBookmark(ctx, index, b)
}

func (s *LoggingBookmarkService) DeleteBookmark(ctx context.Context, index int) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete bookmark",
			"index", index,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteBookmark(ctx, index)
}

func (s *LoggingBookmarkService) ImportBookmarks(ctx context.Context, bookmarks []startpage.Bookmark) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("import bookmarks",
			"count", len(bookmarks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ImportBookmarks(ctx, bookmarks)
}

func (s *LoggingBookmarkService) ExportBookmarks(ctx context.Context) (data []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Info("export bookmarks",
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExportBookmarks(ctx)
}
