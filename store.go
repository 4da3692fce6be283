package startpage

import "context"

// Keys under which start page state is persisted. The names match the keys
// the browser-only page used in localStorage so exported stores stay readable.
const (
	KeySelectedEngine = "sp_selectedEngine"
	KeyBookmarks      = "sp_bookmarks"
	KeyTheme          = "sp_theme"
	KeyTimeFormat     = "sp_time_format"
)

// Store is a string key-value store that survives restarts.
type Store interface {
	// Get returns the value stored under key.
	// The boolean is false if the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
