package main

import (
	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/etree"
	"github.com/fwojciec/startpage/goquery"
)

// decoders maps every import format to its parser.
var decoders = map[startpage.Format]startpage.Decoder{
	startpage.FormatJSON:     startpage.ParseImport,
	startpage.FormatNetscape: goquery.ParseNetscape,
	startpage.FormatXBEL:     etree.DecodeXBEL,
}

// encoders maps the non-JSON export formats to their writers. JSON export
// goes through the bookmark service so it matches the stored form.
var encoders = map[startpage.Format]startpage.Encoder{
	startpage.FormatNetscape: goquery.EncodeNetscape,
	startpage.FormatXBEL:     etree.EncodeXBEL,
}

// resolveFormat returns the explicit format if set, otherwise the format
// implied by name.
func resolveFormat(explicit, name string) (startpage.Format, error) {
	if explicit == "" {
		return startpage.FormatFromName(name), nil
	}
	f := startpage.Format(explicit)
	if _, ok := decoders[f]; !ok {
		return "", startpage.Errorf(startpage.EINVALID, "unknown format %q", explicit)
	}
	return f, nil
}
