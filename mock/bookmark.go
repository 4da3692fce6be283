package mock

import (
	"context"

	"github.com/fwojciec/startpage"
)

var _ startpage.BookmarkService = (*BookmarkService)(nil)

// BookmarkService is a mock implementation of startpage.BookmarkService.
type BookmarkService struct {
	BookmarksFn       func() []startpage.Bookmark
	AddBookmarkFn     func(ctx context.Context, b startpage.Bookmark) error
	UpdateBookmarkFn  func(ctx context.Context, index int, b startpage.Bookmark) error
	DeleteBookmarkFn  func(ctx context.Context, index int) error
	ImportBookmarksFn func(ctx context.Context, bookmarks []startpage.Bookmark) error
	ExportBookmarksFn func(ctx context.Context) ([]byte, error)
}

func (s *BookmarkService) Bookmarks() []startpage.Bookmark {
	return s.BookmarksFn()
}

func (s *BookmarkService) AddBookmark(ctx context.Context, b startpage.Bookmark) error {
	return s.AddBookmarkFn(ctx, b)
}

func (s *BookmarkService) UpdateBookmark(ctx context.Context, index int, b startpage.Bookmark) error {
	return s.UpdateBookmarkFn(ctx, index, b)
}

func (s *BookmarkService) DeleteBookmark(ctx context.Context, index int) error {
	return s.DeleteBookmarkFn(ctx, index)
}

func (s *BookmarkService) ImportBookmarks(ctx context.Context, bookmarks []startpage.Bookmark) error {
	return s.ImportBookmarksFn(ctx, bookmarks)
}

func (s *BookmarkService) ExportBookmarks(ctx context.Context) ([]byte, error) {
	return s.ExportBookmarksFn(ctx)
}
