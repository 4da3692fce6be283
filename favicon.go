package startpage

import (
	"context"
	"net/url"
)

// FaviconServiceURL is the icon service used when a site's own icon cannot
// be discovered. The encoded origin is appended.
const FaviconServiceURL = "https://www.google.com/s2/favicons?sz=64&domain_url="

// FaviconURL returns the icon service URL for pageURL's origin.
// Returns an empty string if pageURL is not an absolute URL.
func FaviconURL(pageURL string) string {
	origin, ok := Origin(pageURL)
	if !ok {
		return ""
	}
	return FaviconServiceURL + EncodeURIComponent(origin)
}

// Origin returns scheme://host[:port] of rawURL.
// The boolean is false if rawURL has no scheme or host.
func Origin(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return u.Scheme + "://" + u.Host, true
}

// FaviconResolver finds the icon URL for a bookmarked page.
type FaviconResolver interface {
	// Favicon returns an icon URL for pageURL.
	// Implementations return an error when no icon could be determined.
	Favicon(ctx context.Context, pageURL string) (string, error)
}
