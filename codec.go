package startpage

import (
	"path/filepath"
	"strings"
)

// Format identifies a bookmark file format.
type Format string

// Supported bookmark file formats.
const (
	FormatJSON     Format = "json"
	FormatNetscape Format = "netscape"
	FormatXBEL     Format = "xbel"
)

// FormatFromName picks a format from a file name's extension.
// Unknown extensions are treated as JSON.
func FormatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return FormatNetscape
	case ".xbel", ".xml":
		return FormatXBEL
	default:
		return FormatJSON
	}
}

// Decoder parses a bookmark file into bookmarks.
type Decoder func(data []byte) ([]Bookmark, error)

// Encoder serializes bookmarks into a bookmark file.
type Encoder func(bookmarks []Bookmark) ([]byte, error)
