package startpage

import (
	"encoding/json"
	"strconv"
)

// Placeholders used when imported records lack a title or URL.
const (
	UntitledTitle  = "untitled"
	PlaceholderURL = "#"
)

// ParseImport decodes an import file: a JSON array of loosely-typed objects.
// Each element is coerced with CoerceBookmark. Returns EINVALID if data is
// not valid JSON, is not an array, or contains null elements.
func ParseImport(data []byte) ([]Bookmark, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, Errorf(EINVALID, "JSON parse error")
	}

	items, ok := v.([]any)
	if !ok {
		return nil, Errorf(EINVALID, "invalid JSON format")
	}

	bookmarks := make([]Bookmark, 0, len(items))
	for _, item := range items {
		if item == nil {
			return nil, Errorf(EINVALID, "JSON parse error")
		}
		record, _ := item.(map[string]any)
		bookmarks = append(bookmarks, CoerceBookmark(record))
	}
	return bookmarks, nil
}

// CoerceBookmark maps a loosely-typed record onto a Bookmark.
// Title falls back from "title" to "name" to UntitledTitle, URL from "url"
// to "href" to PlaceholderURL. Values are taken as-is, without normalization.
func CoerceBookmark(record map[string]any) Bookmark {
	b := Bookmark{
		Title: firstTruthy(record, "title", "name"),
		URL:   firstTruthy(record, "url", "href"),
		Chord: firstTruthy(record, "chord"),
	}
	if b.Title == "" {
		b.Title = UntitledTitle
	}
	if b.URL == "" {
		b.URL = PlaceholderURL
	}
	return b
}

// firstTruthy returns the string form of the first field that is set to a
// non-empty, non-zero, non-false value.
func firstTruthy(record map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := truthyString(record[key]); s != "" {
			return s
		}
	}
	return ""
}

func truthyString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return ""
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
