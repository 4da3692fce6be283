// Package app holds the start page controller: the single owner of UI state
// that turns page events into state changes and effects.
package app

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/chord"
	"github.com/fwojciec/startpage/clock"
	"github.com/fwojciec/startpage/search"
)

// Toast messages.
const (
	ImportedMessage      = "Import complete"
	SettingsSavedMessage = "Settings saved"
)

// ExportName is the file name offered for bookmark downloads.
const ExportName = "bookmarks.json"

// Controller serializes page events against the bookmark registry, the
// settings and the search engines.
type Controller struct {
	bookmarks  startpage.BookmarkService
	settings   startpage.SettingsService
	dispatcher *search.Dispatcher
	clock      *clock.Clock
	matcher    *chord.Matcher
	decoders   map[startpage.Format]startpage.Decoder
	logger     *slog.Logger

	mu           sync.Mutex
	editor       *Editor
	settingsOpen bool
	favicons     map[string]string

	changes chan struct{}
}

// Option configures a Controller.
type Option func(*Controller)

// WithMatcherOptions configures the chord matcher.
func WithMatcherOptions(opts ...chord.Option) Option {
	return func(c *Controller) {
		c.matcher = chord.NewMatcher(c.bookmarks, opts...)
	}
}

// WithDecoder registers a decoder for imports of format f.
func WithDecoder(f startpage.Format, dec startpage.Decoder) Option {
	return func(c *Controller) {
		c.decoders[f] = dec
	}
}

// WithLogger sets the logger for failed operations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a Controller. JSON imports are always supported.
func NewController(
	bookmarks startpage.BookmarkService,
	settings startpage.SettingsService,
	dispatcher *search.Dispatcher,
	clk *clock.Clock,
	opts ...Option,
) *Controller {
	c := &Controller{
		bookmarks:  bookmarks,
		settings:   settings,
		dispatcher: dispatcher,
		clock:      clk,
		decoders: map[startpage.Format]startpage.Decoder{
			startpage.FormatJSON: startpage.ParseImport,
		},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		favicons: make(map[string]string),
		changes:  make(chan struct{}, 1),
	}
	c.matcher = chord.NewMatcher(bookmarks)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Changes delivers a value after the bookmark list changes. Notifications
// coalesce while nobody is receiving.
func (c *Controller) Changes() <-chan struct{} {
	return c.changes
}

// BookmarksChanged records a bookmark change made outside Handle.
func (c *Controller) BookmarksChanged() {
	c.notify()
}

func (c *Controller) notify() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

// SetFavicons replaces the resolved icons, keyed by page URL.
func (c *Controller) SetFavicons(icons map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.favicons = make(map[string]string, len(icons))
	for k, v := range icons {
		c.favicons[k] = v
	}
}

// Bookmarks returns the current bookmark list.
func (c *Controller) Bookmarks() []startpage.Bookmark {
	return c.bookmarks.Bookmarks()
}

// State returns a snapshot of the current state. PrefersDark is left unset.
func (c *Controller) State(ctx context.Context) (State, error) {
	settings, err := c.settings.Settings(ctx)
	if err != nil {
		return State{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		Engines:      c.dispatcher.Engines(),
		Settings:     settings,
		Bookmarks:    c.bookmarks.Bookmarks(),
		Favicons:     make(map[string]string, len(c.favicons)),
		Clock:        c.clock.Current(),
		SettingsOpen: c.settingsOpen,
	}
	for k, v := range c.favicons {
		s.Favicons[k] = v
	}
	if c.editor != nil {
		editor := *c.editor
		s.Editor = &editor
	}
	return s, nil
}

// Handle applies ev and returns the effects the page must carry out.
// Failures are reported as toasts.
func (c *Controller) Handle(ctx context.Context, ev Event) []Effect {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Type {
	case EventKey:
		return c.handleKey(ctx, ev)
	case EventSubmitSearch:
		return c.submitSearch(ctx, ev.Query)
	case EventSelectEngine:
		return c.selectEngine(ctx, ev.Engine)
	case EventOpenEditor:
		return c.openEditor(ev.Index)
	case EventSaveBookmark:
		return c.saveBookmark(ctx, ev.Bookmark)
	case EventDeleteBookmark:
		return c.deleteBookmark(ctx)
	case EventCancelEditor:
		c.editor = nil
		return []Effect{Rerender()}
	case EventImport:
		return c.importBookmarks(ctx, ev.Name, []byte(ev.Data))
	case EventExport:
		return c.export(ctx)
	case EventOpenSettings:
		c.settingsOpen = true
		return []Effect{Rerender()}
	case EventCloseSettings:
		c.settingsOpen = false
		return []Effect{Rerender()}
	case EventSaveSettings:
		return c.saveSettings(ctx, ev.Theme, ev.TimeFormat)
	case EventClickTime:
		return []Effect{Copy(c.clock.Timestamp())}
	case EventCopyResult:
		return []Effect{Toast(clock.ResultMessage(ev.OK))}
	default:
		c.logger.Debug("unknown event", "type", ev.Type)
		return nil
	}
}

func (c *Controller) modalOpen() bool {
	return c.editor != nil || c.settingsOpen
}

func (c *Controller) handleKey(ctx context.Context, ev Event) []Effect {
	if c.modalOpen() {
		return nil
	}
	if ev.Key == "/" && !ev.SearchFocused {
		return []Effect{FocusSearch()}
	}
	if ev.Alt && !ev.Ctrl && !ev.Shift {
		if e, ok := c.dispatcher.EngineForKey(ev.Key); ok {
			return c.selectEngine(ctx, e.ID)
		}
	}
	if ev.SearchFocused {
		return nil
	}
	if b, ok := c.matcher.Key(ev.Key); ok {
		return []Effect{Open(b.URL)}
	}
	return nil
}

func (c *Controller) submitSearch(ctx context.Context, query string) []Effect {
	settings, err := c.settings.Settings(ctx)
	if err != nil {
		return c.fail("read settings", err)
	}
	u, ok := c.dispatcher.URL(settings.SelectedEngine, query)
	if !ok {
		return nil
	}
	return []Effect{Open(u)}
}

func (c *Controller) selectEngine(ctx context.Context, id string) []Effect {
	if err := c.settings.SelectEngine(ctx, id, true); err != nil {
		return c.fail("select engine", err)
	}
	return []Effect{Rerender()}
}

func (c *Controller) openEditor(index int) []Effect {
	if index < 0 {
		c.editor = &Editor{Index: -1}
		return []Effect{Rerender()}
	}
	bookmarks := c.bookmarks.Bookmarks()
	if index >= len(bookmarks) {
		return c.fail("open editor", startpage.Errorf(startpage.EINVALID, "invalid index %d", index))
	}
	c.editor = &Editor{Index: index, Bookmark: bookmarks[index]}
	return []Effect{Rerender()}
}

func (c *Controller) saveBookmark(ctx context.Context, b startpage.Bookmark) []Effect {
	if c.editor == nil {
		return nil
	}
	var err error
	if c.editor.Index >= 0 {
		err = c.bookmarks.UpdateBookmark(ctx, c.editor.Index, b)
	} else {
		err = c.bookmarks.AddBookmark(ctx, b)
	}
	if err != nil {
		return c.fail("save bookmark", err)
	}
	c.editor = nil
	c.notify()
	return []Effect{Rerender()}
}

func (c *Controller) deleteBookmark(ctx context.Context) []Effect {
	if c.editor == nil || c.editor.Index < 0 {
		return nil
	}
	if err := c.bookmarks.DeleteBookmark(ctx, c.editor.Index); err != nil {
		return c.fail("delete bookmark", err)
	}
	c.editor = nil
	c.notify()
	return []Effect{Rerender()}
}

// Decode parses an import file, choosing the decoder by file name.
func (c *Controller) Decode(name string, data []byte) ([]startpage.Bookmark, error) {
	decode, ok := c.decoders[startpage.FormatFromName(name)]
	if !ok {
		decode = startpage.ParseImport
	}
	return decode(data)
}

func (c *Controller) importBookmarks(ctx context.Context, name string, data []byte) []Effect {
	bookmarks, err := c.Decode(name, data)
	if err != nil {
		return c.fail("import", err)
	}
	if err := c.bookmarks.ImportBookmarks(ctx, bookmarks); err != nil {
		return c.fail("import", err)
	}
	c.notify()
	return []Effect{Toast(ImportedMessage), Rerender()}
}

func (c *Controller) export(ctx context.Context) []Effect {
	data, err := c.bookmarks.ExportBookmarks(ctx)
	if err != nil {
		return c.fail("export", err)
	}
	return []Effect{Download(ExportName, "application/json", data)}
}

func (c *Controller) saveSettings(ctx context.Context, theme startpage.Theme, format startpage.TimeFormat) []Effect {
	if err := c.settings.SaveDisplay(ctx, theme, format); err != nil {
		return c.fail("save settings", err)
	}
	c.settingsOpen = false
	return []Effect{Toast(SettingsSavedMessage), Rerender()}
}

// fail logs err and reports it as a toast.
func (c *Controller) fail(op string, err error) []Effect {
	c.logger.Warn(op+" failed", "err", err)
	return []Effect{Toast(capitalize(startpage.ErrorMessage(err)))}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
