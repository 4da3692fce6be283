package goquery_test

import (
	"testing"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const firefoxExport = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks Menu</H1>
<DL><p>
    <DT><A HREF="place:sort=8&maxResults=10">Recent Tags</A>
    <DT><H3>Dev</H3>
    <DL><p>
        <DT><A HREF="https://go.dev/" ADD_DATE="1700000000" SHORTCUTURL="gd">Go &amp; friends</A>
        <DT><A HREF="https://pkg.go.dev/">  </A>
    </DL><p>
    <DT><A HREF="https://news.ycombinator.com/">Hacker News</A>
</DL><p>
`

func TestParseNetscape(t *testing.T) {
	t.Parallel()

	t.Run("flattens folders in document order", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.ParseNetscape([]byte(firefoxExport))

		require.NoError(t, err)
		assert.Equal(t, []startpage.Bookmark{
			{Title: "Go & friends", URL: "https://go.dev/", Chord: "gd"},
			{Title: "untitled", URL: "https://pkg.go.dev/"},
			{Title: "Hacker News", URL: "https://news.ycombinator.com/"},
		}, got)
	})

	t.Run("no links is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ParseNetscape([]byte("<html><body>nothing</body></html>"))

		assert.Equal(t, startpage.EINVALID, startpage.ErrorCode(err))
	})
}

func TestEncodeNetscape(t *testing.T) {
	t.Parallel()

	bookmarks := []startpage.Bookmark{
		{Title: "A <b> & c", URL: "https://a.org/?x=1&y=2", Chord: "A B"},
		{Title: "Plain", URL: "https://plain.org"},
	}

	data, err := goquery.EncodeNetscape(bookmarks)
	require.NoError(t, err)

	assert.Contains(t, string(data), `HREF="https://a.org/?x=1&amp;y=2" SHORTCUTURL="A B">A &lt;b&gt; &amp; c</A>`)

	got, err := goquery.ParseNetscape(data)
	require.NoError(t, err)
	assert.Equal(t, bookmarks, got)
}
