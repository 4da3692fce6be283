package goquery

import (
	"bytes"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/startpage"
)

var _ startpage.Decoder = ParseNetscape

var _ startpage.Encoder = EncodeNetscape

// ParseNetscape reads a Netscape bookmark file, the HTML format browsers use
// for bookmark export. Every link becomes a bookmark in document order; a
// SHORTCUTURL keyword becomes its chord. Folders are flattened.
func ParseNetscape(data []byte) ([]startpage.Bookmark, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, startpage.Errorf(startpage.EINVALID, "failed to parse HTML: %v", err)
	}

	var bookmarks []startpage.Bookmark
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "place:") {
			return
		}
		title := strings.TrimSpace(sel.Text())
		if title == "" {
			title = startpage.UntitledTitle
		}
		bookmarks = append(bookmarks, startpage.Bookmark{
			Title: title,
			URL:   href,
			Chord: strings.TrimSpace(sel.AttrOr("shortcuturl", "")),
		})
	})

	if len(bookmarks) == 0 {
		return nil, startpage.Errorf(startpage.EINVALID, "no bookmarks found")
	}
	return bookmarks, nil
}

// EncodeNetscape writes bookmarks as a Netscape bookmark file. Chords are
// written as SHORTCUTURL so ParseNetscape restores them.
func EncodeNetscape(bookmarks []startpage.Bookmark) ([]byte, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString(`<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">` + "\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n<H1>Bookmarks</H1>\n<DL><p>\n")
	for _, bm := range bookmarks {
		b.WriteString(`    <DT><A HREF="`)
		b.WriteString(html.EscapeString(bm.URL))
		b.WriteString(`"`)
		if bm.Chord != "" {
			b.WriteString(` SHORTCUTURL="`)
			b.WriteString(html.EscapeString(bm.Chord))
			b.WriteString(`"`)
		}
		b.WriteString(">")
		b.WriteString(html.EscapeString(bm.Title))
		b.WriteString("</A>\n")
	}
	b.WriteString("</DL><p>\n")
	return []byte(b.String()), nil
}
