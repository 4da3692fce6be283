package app

import "github.com/fwojciec/startpage"

// State is a snapshot of everything the page displays.
type State struct {
	Engines   []startpage.Engine
	Settings  startpage.Settings
	Bookmarks []startpage.Bookmark
	Favicons  map[string]string // page URL -> icon URL
	Clock     startpage.Face

	Editor       *Editor
	SettingsOpen bool

	// PrefersDark reports the page environment's colour scheme preference.
	PrefersDark bool
}

// Editor is the open bookmark editor. Index is -1 for a new bookmark.
type Editor struct {
	Index    int
	Bookmark startpage.Bookmark
}

// View is the render-ready form of a State.
type View struct {
	Theme     startpage.Theme `json:"theme"`
	Engines   []EngineButton  `json:"engines"`
	Bookmarks []Tile          `json:"bookmarks"`
	Clock     startpage.Face  `json:"clock"`
	Editor    *EditorView     `json:"editor,omitempty"`
	Settings  *SettingsView   `json:"settings,omitempty"`
}

// EngineButton is one entry of the engine selector.
type EngineButton struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Key    string `json:"key"`
	Active bool   `json:"active"`
}

// Tile is one bookmark in the grid. Title is HTML-escaped.
type Tile struct {
	Index   int    `json:"index"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Chord   string `json:"chord"`
	Favicon string `json:"favicon"`
}

// EditorView is the bookmark editor form.
type EditorView struct {
	Index     int    `json:"index"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Chord     string `json:"chord"`
	CanDelete bool   `json:"canDelete"`
}

// SettingsView is the settings form.
type SettingsView struct {
	Theme      startpage.Theme      `json:"theme"`
	TimeFormat startpage.TimeFormat `json:"timeFormat"`
}

// Render converts s into a View. It has no side effects.
func Render(s State) View {
	v := View{
		Theme:     startpage.ResolveTheme(s.Settings.Theme, s.PrefersDark),
		Engines:   make([]EngineButton, 0, len(s.Engines)),
		Bookmarks: make([]Tile, 0, len(s.Bookmarks)),
		Clock:     s.Clock,
	}

	for _, e := range s.Engines {
		v.Engines = append(v.Engines, EngineButton{
			ID:     e.ID,
			Name:   e.Name,
			Key:    e.Key,
			Active: e.ID == s.Settings.SelectedEngine,
		})
	}

	for i, b := range s.Bookmarks {
		favicon, ok := s.Favicons[b.URL]
		if !ok {
			favicon = startpage.FaviconURL(b.URL)
		}
		v.Bookmarks = append(v.Bookmarks, Tile{
			Index:   i,
			Title:   startpage.EscapeHTML(b.Title),
			URL:     b.URL,
			Chord:   b.Chord,
			Favicon: favicon,
		})
	}

	if s.Editor != nil {
		v.Editor = &EditorView{
			Index:     s.Editor.Index,
			Title:     s.Editor.Bookmark.Title,
			URL:       s.Editor.Bookmark.URL,
			Chord:     s.Editor.Bookmark.Chord,
			CanDelete: s.Editor.Index >= 0,
		}
	}

	if s.SettingsOpen {
		v.Settings = &SettingsView{
			Theme:      s.Settings.Theme,
			TimeFormat: s.Settings.TimeFormat,
		}
	}

	return v
}
