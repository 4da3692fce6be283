package startpage

import (
	"context"
	"strings"
)

// Engine is a named search destination. The encoded query is appended to
// Template. Key is the Alt hotkey that selects the engine.
type Engine struct {
	ID       string `json:"id" toml:"id"`
	Name     string `json:"name" toml:"name"`
	Template string `json:"template" toml:"template"`
	Key      string `json:"key" toml:"key"`
}

// Engine identifiers known to the start page.
const (
	EngineVirgil   = "virgil"
	EnginePlayseek = "playseek"
	EngineGoogle   = "google"
	EngineChatGPT  = "chatgpt"
)

// DefaultEngineID is selected when no preference has been stored.
const DefaultEngineID = EngineVirgil

// FallbackEngineID is used for engine ids that have no template.
const FallbackEngineID = EngineGoogle

// ChatGPTURL is the fixed origin used for the chatgpt engine. The service
// ignores the generic q parameter, so the query goes into prompt instead.
const ChatGPTURL = "https://chat.openai.com/?prompt="

// DefaultEngines returns the built-in engines in selector order.
func DefaultEngines() []Engine {
	return []Engine{
		{ID: EngineVirgil, Name: "Virgil", Template: "https://virgil.samidy.com/Games/?q=", Key: "a"},
		{ID: EnginePlayseek, Name: "Playseek", Template: "https://playseek.app/search?q=", Key: "s"},
		{ID: EngineGoogle, Name: "Google", Template: "https://www.google.com/search?q=", Key: "d"},
		{ID: EngineChatGPT, Name: "ChatGPT", Key: "f"},
	}
}

// Validate returns an error if the engine contains invalid fields.
func (e *Engine) Validate() error {
	if e.ID == "" {
		return Errorf(EINVALID, "engine id required")
	}
	if e.Template == "" && e.ID != EngineChatGPT {
		return Errorf(EINVALID, "engine %q template required", e.ID)
	}
	return nil
}

// Navigator opens URLs in a new browsing context.
type Navigator interface {
	Open(ctx context.Context, url string) error
}

// EncodeURIComponent percent-encodes s the way ECMAScript's
// encodeURIComponent does: everything except A-Z a-z 0-9 and - _ . ! ~ * ' ( )
// is encoded as UTF-8 bytes with uppercase hex digits.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
