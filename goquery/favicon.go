// Package goquery implements HTML parsing for the start page: favicon
// discovery on bookmarked pages and Netscape bookmark file import.
package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/startpage"
)

var _ startpage.FaviconResolver = (*FaviconFinder)(nil)

// iconSelectors are tried in order; the first match wins.
var iconSelectors = []string{
	`link[rel~="icon"][href]`,
	`link[rel~="apple-touch-icon"][href]`,
	`link[rel~="mask-icon"][href]`,
}

// FaviconFinder discovers a page's icon from the link elements in its HTML.
type FaviconFinder struct {
	fetcher startpage.Fetcher
}

// NewFaviconFinder creates a FaviconFinder that loads pages with fetcher.
func NewFaviconFinder(fetcher startpage.Fetcher) *FaviconFinder {
	return &FaviconFinder{fetcher: fetcher}
}

// Favicon fetches pageURL and returns the absolute URL of its declared icon,
// or the origin's /favicon.ico when none is declared.
func (f *FaviconFinder) Favicon(ctx context.Context, pageURL string) (string, error) {
	page, err := url.Parse(pageURL)
	if err != nil || (page.Scheme != "http" && page.Scheme != "https") || page.Host == "" {
		return "", startpage.Errorf(startpage.EINVALID, "not a web page: %q", pageURL)
	}

	html, err := f.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}
	return FindIcon(html, page)
}

// FindIcon returns the icon declared in html, resolved against page and any
// <base href>. It falls back to page's /favicon.ico.
func FindIcon(html string, page *url.URL) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", startpage.Errorf(startpage.EINVALID, "failed to parse HTML: %v", err)
	}

	base := page
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if u, err := page.Parse(strings.TrimSpace(href)); err == nil {
			base = u
		}
	}

	for _, selector := range iconSelectors {
		href, ok := doc.Find(selector).First().Attr("href")
		href = strings.TrimSpace(href)
		if !ok || href == "" {
			continue
		}
		icon, err := base.Parse(href)
		if err != nil {
			continue
		}
		return icon.String(), nil
	}

	return page.Scheme + "://" + page.Host + "/favicon.ico", nil
}
