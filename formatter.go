package startpage

import (
	"fmt"
	"strings"
)

// FormatBookmarks formats bookmarks for terminal display, one per line:
// index, chord (if any), title and URL separated by two spaces.
func FormatBookmarks(bookmarks []Bookmark) string {
	if len(bookmarks) == 0 {
		return ""
	}

	lines := make([]string, 0, len(bookmarks))
	for i, b := range bookmarks {
		chord := b.Chord
		if chord == "" {
			chord = "-"
		}
		lines = append(lines, fmt.Sprintf("%d  %s  %s  %s", i, chord, b.Title, b.URL))
	}

	return strings.Join(lines, "\n")
}
