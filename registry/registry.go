// Package registry provides the ordered bookmark registry. The whole list is
// held in memory and written back to the store after every mutation.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"github.com/fwojciec/startpage"
)

var _ startpage.BookmarkService = (*Registry)(nil)

// Registry implements startpage.BookmarkService over a startpage.Store.
type Registry struct {
	store  startpage.Store
	logger *slog.Logger

	mu        sync.Mutex
	bookmarks []startpage.Bookmark
}

// NewRegistry creates a Registry holding the default bookmarks.
// Call Load to read the persisted list.
func NewRegistry(store startpage.Store, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{
		store:     store,
		logger:    logger,
		bookmarks: startpage.DefaultBookmarks(),
	}
}

// Load reads the persisted list. Missing, empty or unreadable data falls
// back to the default bookmarks; errors are logged, never returned.
func (r *Registry) Load(ctx context.Context) {
	bookmarks := r.read(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookmarks = bookmarks
}

func (r *Registry) read(ctx context.Context) []startpage.Bookmark {
	raw, ok, err := r.store.Get(ctx, startpage.KeyBookmarks)
	if err != nil {
		r.logger.Warn("bookmarks unreadable, using defaults", "err", err)
		return startpage.DefaultBookmarks()
	}
	if !ok || raw == "" {
		return startpage.DefaultBookmarks()
	}

	var bookmarks []startpage.Bookmark
	if err := json.Unmarshal([]byte(raw), &bookmarks); err != nil {
		r.logger.Warn("bookmarks corrupt, using defaults", "err", err)
		return startpage.DefaultBookmarks()
	}
	if bookmarks == nil {
		return startpage.DefaultBookmarks()
	}
	return bookmarks
}

// Bookmarks returns a copy of the current list.
func (r *Registry) Bookmarks() []startpage.Bookmark {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.bookmarks)
}

// Len returns the number of bookmarks.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookmarks)
}

// AddBookmark normalizes b, appends it and persists the list.
func (r *Registry) AddBookmark(ctx context.Context, b startpage.Bookmark) error {
	b.Normalize()
	if err := b.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(clone(r.bookmarks), b)
	return r.persist(ctx, next)
}

// UpdateBookmark normalizes b, replaces the bookmark at index and persists.
func (r *Registry) UpdateBookmark(ctx context.Context, index int, b startpage.Bookmark) error {
	b.Normalize()
	if err := b.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkIndex(index); err != nil {
		return err
	}
	next := clone(r.bookmarks)
	next[index] = b
	return r.persist(ctx, next)
}

// DeleteBookmark removes the bookmark at index and persists.
func (r *Registry) DeleteBookmark(ctx context.Context, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkIndex(index); err != nil {
		return err
	}
	next := make([]startpage.Bookmark, 0, len(r.bookmarks)-1)
	next = append(next, r.bookmarks[:index]...)
	next = append(next, r.bookmarks[index+1:]...)
	return r.persist(ctx, next)
}

// ImportBookmarks replaces the whole registry with bookmarks and persists.
// Imported values are stored as given.
func (r *Registry) ImportBookmarks(ctx context.Context, bookmarks []startpage.Bookmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.persist(ctx, clone(bookmarks))
}

// ExportBookmarks returns the current list as JSON indented with two spaces.
func (r *Registry) ExportBookmarks(ctx context.Context) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return encode(r.bookmarks, "  ")
}

// persist writes next to the store and, on success, makes it current.
// Caller must hold r.mu.
func (r *Registry) persist(ctx context.Context, next []startpage.Bookmark) error {
	data, err := encode(next, "")
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, startpage.KeyBookmarks, string(data)); err != nil {
		return err
	}
	r.bookmarks = next
	return nil
}

func (r *Registry) checkIndex(index int) error {
	if index < 0 || index >= len(r.bookmarks) {
		return startpage.Errorf(startpage.EINVALID, "invalid index %d", index)
	}
	return nil
}

// encode marshals bookmarks without HTML escaping so stored titles stay
// byte-identical to what the user typed.
func encode(bookmarks []startpage.Bookmark, indent string) ([]byte, error) {
	if bookmarks == nil {
		bookmarks = []startpage.Bookmark{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(bookmarks); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func clone(bookmarks []startpage.Bookmark) []startpage.Bookmark {
	out := make([]startpage.Bookmark, len(bookmarks))
	copy(out, bookmarks)
	return out
}
