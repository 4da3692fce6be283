// Package etree reads and writes XBEL, the XML Bookmark Exchange Language.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/startpage"
)

// Owner marks the metadata element that carries a bookmark's chord.
const Owner = "startpage"

const doctype = `DOCTYPE xbel PUBLIC "+//IDN python.org//DTD XML Bookmark Exchange Language 1.0//EN//XML" "http://pyxml.sourceforge.net/topics/dtds/xbel.dtd"`

var (
	_ startpage.Decoder = DecodeXBEL
	_ startpage.Encoder = EncodeXBEL
)

// EncodeXBEL writes bookmarks as an XBEL document. Chords are stored in
// <info><metadata owner="startpage" chord="..."/></info>.
func EncodeXBEL(bookmarks []startpage.Bookmark) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(doctype)

	root := doc.CreateElement("xbel")
	root.CreateAttr("version", "1.0")
	for _, b := range bookmarks {
		el := root.CreateElement("bookmark")
		el.CreateAttr("href", b.URL)
		el.CreateElement("title").SetText(b.Title)
		if b.Chord != "" {
			meta := el.CreateElement("info").CreateElement("metadata")
			meta.CreateAttr("owner", Owner)
			meta.CreateAttr("chord", b.Chord)
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// DecodeXBEL reads an XBEL document. Bookmarks nested in folders are
// returned in document order.
func DecodeXBEL(data []byte) ([]startpage.Bookmark, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, startpage.Errorf(startpage.EINVALID, "XBEL parse error")
	}

	root := doc.Root()
	if root == nil || root.Tag != "xbel" {
		return nil, startpage.Errorf(startpage.EINVALID, "invalid XBEL format")
	}

	bookmarks := []startpage.Bookmark{}
	collect(root, &bookmarks)
	return bookmarks, nil
}

func collect(el *etree.Element, out *[]startpage.Bookmark) {
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "folder":
			collect(child, out)
		case "bookmark":
			*out = append(*out, decodeBookmark(child))
		}
	}
}

func decodeBookmark(el *etree.Element) startpage.Bookmark {
	b := startpage.Bookmark{
		URL: strings.TrimSpace(el.SelectAttrValue("href", "")),
	}
	if title := el.SelectElement("title"); title != nil {
		b.Title = strings.TrimSpace(title.Text())
	}
	if b.Title == "" {
		b.Title = startpage.UntitledTitle
	}
	if b.URL == "" {
		b.URL = startpage.PlaceholderURL
	}

	if info := el.SelectElement("info"); info != nil {
		for _, meta := range info.SelectElements("metadata") {
			if meta.SelectAttrValue("owner", "") == Owner {
				b.Chord = meta.SelectAttrValue("chord", "")
				break
			}
		}
	}
	return b
}
