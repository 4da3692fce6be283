package app

import "github.com/fwojciec/startpage"

// EventType identifies a UI event.
type EventType string

// UI events understood by the Controller.
const (
	EventKey            EventType = "key"
	EventSubmitSearch   EventType = "submitSearch"
	EventSelectEngine   EventType = "selectEngine"
	EventOpenEditor     EventType = "openEditor"
	EventSaveBookmark   EventType = "saveBookmark"
	EventDeleteBookmark EventType = "deleteBookmark"
	EventCancelEditor   EventType = "cancelEditor"
	EventImport         EventType = "import"
	EventExport         EventType = "export"
	EventOpenSettings   EventType = "openSettings"
	EventSaveSettings   EventType = "saveSettings"
	EventCloseSettings  EventType = "closeSettings"
	EventClickTime      EventType = "clickTime"
	EventCopyResult     EventType = "copyResult"
)

// Event is a user interaction reported by the page. Only the fields
// relevant to Type are read.
type Event struct {
	Type EventType `json:"type"`

	// EventKey
	Key           string `json:"key,omitempty"`
	Alt           bool   `json:"alt,omitempty"`
	Ctrl          bool   `json:"ctrl,omitempty"`
	Shift         bool   `json:"shift,omitempty"`
	SearchFocused bool   `json:"searchFocused,omitempty"`

	// EventSubmitSearch
	Query string `json:"query,omitempty"`

	// EventSelectEngine
	Engine string `json:"engine,omitempty"`

	// EventOpenEditor; -1 opens an empty editor for a new bookmark.
	Index int `json:"index,omitempty"`

	// EventSaveBookmark
	Bookmark startpage.Bookmark `json:"bookmark,omitzero"`

	// EventImport
	Name string `json:"name,omitempty"`
	Data string `json:"data,omitempty"`

	// EventSaveSettings
	Theme      startpage.Theme      `json:"theme,omitempty"`
	TimeFormat startpage.TimeFormat `json:"timeFormat,omitempty"`

	// EventCopyResult
	OK bool `json:"ok,omitempty"`
}

// EffectType identifies an Effect.
type EffectType string

// Effects the page must carry out.
const (
	EffectOpen        EffectType = "open"
	EffectToast       EffectType = "toast"
	EffectFocusSearch EffectType = "focusSearch"
	EffectCopy        EffectType = "copy"
	EffectDownload    EffectType = "download"
	EffectRender      EffectType = "render"
)

// Effect is an instruction returned by the Controller. Only the fields
// relevant to Type are set.
type Effect struct {
	Type EffectType `json:"type"`

	URL     string `json:"url,omitempty"`
	Message string `json:"message,omitempty"`
	Text    string `json:"text,omitempty"`

	// EffectDownload
	Name string `json:"name,omitempty"`
	MIME string `json:"mime,omitempty"`
	Data string `json:"data,omitempty"`
}

// Open returns an effect opening url in a new tab.
func Open(url string) Effect {
	return Effect{Type: EffectOpen, URL: url}
}

// Toast returns an effect showing a transient message.
func Toast(message string) Effect {
	return Effect{Type: EffectToast, Message: message}
}

// FocusSearch returns an effect focusing the search input.
func FocusSearch() Effect {
	return Effect{Type: EffectFocusSearch}
}

// Copy returns an effect writing text to the clipboard. The page answers
// with EventCopyResult.
func Copy(text string) Effect {
	return Effect{Type: EffectCopy, Text: text}
}

// Download returns an effect saving data as a file called name.
func Download(name, mime string, data []byte) Effect {
	return Effect{Type: EffectDownload, Name: name, MIME: mime, Data: string(data)}
}

// Rerender returns an effect asking the page to redraw from the current view.
func Rerender() Effect {
	return Effect{Type: EffectRender}
}
