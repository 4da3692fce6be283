package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/mock"
	spslog "github.com/fwojciec/startpage/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingBookmarkService(t *testing.T) {
	t.Parallel()

	t.Run("bookmarks is not logged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.BookmarkService{
			BookmarksFn: func() []startpage.Bookmark {
				return startpage.DefaultBookmarks()
			},
		}

		svc := spslog.NewLoggingBookmarkService(inner, logger)

		assert.Len(t, svc.Bookmarks(), 6)
		assert.Empty(t, buf.String())
	})

	t.Run("add logs title and url", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.BookmarkService{
			AddBookmarkFn: func(_ context.Context, _ startpage.Bookmark) error {
				return nil
			},
		}

		svc := spslog.NewLoggingBookmarkService(inner, logger)
		err := svc.AddBookmark(context.Background(), startpage.Bookmark{Title: "Go", URL: "https://go.dev"})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, `msg="add bookmark"`)
		assert.Contains(t, output, "title=Go")
		assert.Contains(t, output, "url=https://go.dev")
	})

	t.Run("delete logs index and error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.BookmarkService{
			DeleteBookmarkFn: func(_ context.Context, index int) error {
				return startpage.Errorf(startpage.EINVALID, "invalid index %d", index)
			},
		}

		svc := spslog.NewLoggingBookmarkService(inner, logger)
		err := svc.DeleteBookmark(context.Background(), 42)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "index=42")
		assert.Contains(t, output, `err="invalid index 42"`)
	})

	t.Run("import logs count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.BookmarkService{
			ImportBookmarksFn: func(_ context.Context, _ []startpage.Bookmark) error {
				return nil
			},
		}

		svc := spslog.NewLoggingBookmarkService(inner, logger)
		err := svc.ImportBookmarks(context.Background(), startpage.DefaultBookmarks())

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "count=6")
	})
}
