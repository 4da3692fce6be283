package startpage

import (
	"context"
	"strings"
	"unicode"
)

// Bookmark represents a single tile in the bookmark grid.
type Bookmark struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Chord string `json:"chord"`
}

// Validate returns an error if the bookmark contains invalid fields.
func (b *Bookmark) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return Errorf(EINVALID, "bookmark title required")
	}
	if strings.TrimSpace(b.URL) == "" {
		return Errorf(EINVALID, "bookmark URL required")
	}
	return nil
}

// Normalize prepares a bookmark entered by the user for storage.
// Title is trimmed, URL gets a scheme if missing and chord is uppercased.
func (b *Bookmark) Normalize() {
	b.Title = strings.TrimSpace(b.Title)
	b.URL = NormalizeURL(b.URL)
	b.Chord = FormatChord(b.Chord)
}

// DefaultBookmarks returns the built-in bookmark set used when nothing has
// been stored yet. A new slice is returned on every call.
func DefaultBookmarks() []Bookmark {
	return []Bookmark{
		{Title: "Hacker News", URL: "https://news.ycombinator.com", Chord: "H N"},
		{Title: "GitHub", URL: "https://github.com", Chord: "G H"},
		{Title: "Reddit", URL: "https://reddit.com", Chord: "R D"},
		{Title: "Twitter", URL: "https://twitter.com", Chord: "T W"},
		{Title: "YouTube", URL: "https://www.youtube.com", Chord: "Y T"},
		{Title: "Wikipedia", URL: "https://wikipedia.org", Chord: "W K"},
	}
}

// NormalizeURL trims rawURL and prepends "https://" unless it already
// starts with http:// or https:// in any letter case.
func NormalizeURL(rawURL string) string {
	u := strings.TrimSpace(rawURL)
	lower := strings.ToLower(u)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return u
	}
	return "https://" + u
}

// FormatChord returns the stored form of a chord: trimmed and uppercased.
func FormatChord(chord string) string {
	return strings.ToUpper(strings.TrimSpace(chord))
}

// NormalizeChord returns the form of a chord used for matching:
// all whitespace removed and lowercased.
func NormalizeChord(chord string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, chord))
}

// EscapeHTML escapes the characters that would otherwise let a bookmark
// title inject markup into the grid.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// BookmarkService represents the ordered, index-addressed bookmark registry.
type BookmarkService interface {
	// Bookmarks returns a copy of the current list in display order.
	Bookmarks() []Bookmark

	// AddBookmark appends a bookmark and persists the list.
	AddBookmark(ctx context.Context, b Bookmark) error

	// UpdateBookmark replaces the bookmark at index and persists the list.
	// Returns EINVALID if index is out of range.
	UpdateBookmark(ctx context.Context, index int, b Bookmark) error

	// DeleteBookmark removes the bookmark at index and persists the list.
	// Returns EINVALID if index is out of range.
	DeleteBookmark(ctx context.Context, index int) error

	// ImportBookmarks replaces the whole list and persists it.
	ImportBookmarks(ctx context.Context, bookmarks []Bookmark) error

	// ExportBookmarks returns the current list as pretty-printed JSON.
	ExportBookmarks(ctx context.Context) ([]byte, error)
}
