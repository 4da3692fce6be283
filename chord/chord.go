// Package chord matches typed key sequences against bookmark chords.
package chord

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/startpage"
)

// DefaultTimeout is how long the buffer survives without a keystroke.
const DefaultTimeout = 900 * time.Millisecond

// Timer is a pending buffer reset.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

// BookmarkSource supplies the bookmarks to match against, in priority order.
type BookmarkSource interface {
	Bookmarks() []startpage.Bookmark
}

// Matcher accumulates single-character keystrokes into a buffer and reports
// the first bookmark whose chord is a suffix of it. The buffer is cleared
// after a match and Timeout after the last keystroke.
type Matcher struct {
	source    BookmarkSource
	timeout   time.Duration
	afterFunc AfterFunc

	mu     sync.Mutex
	buffer strings.Builder
	timer  Timer
	gen    uint64
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithTimeout sets the inactivity period after which the buffer resets.
// Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(m *Matcher) {
		m.timeout = d
	}
}

// WithAfterFunc replaces time.AfterFunc, mainly for tests.
func WithAfterFunc(fn AfterFunc) Option {
	return func(m *Matcher) {
		m.afterFunc = fn
	}
}

// NewMatcher creates a Matcher over source.
func NewMatcher(source BookmarkSource, opts ...Option) *Matcher {
	m := &Matcher{
		source:  source,
		timeout: DefaultTimeout,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Key feeds one key event to the matcher. Keys that are not a single
// character (Shift, Enter, ArrowUp, ...) are ignored. It returns the matched
// bookmark, if any.
func (m *Matcher) Key(key string) (startpage.Bookmark, bool) {
	if utf8.RuneCountInString(key) != 1 {
		return startpage.Bookmark{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.buffer.WriteString(strings.ToLower(key))
	m.restartTimer()

	typed := startpage.NormalizeChord(m.buffer.String())
	for _, b := range m.source.Bookmarks() {
		chord := startpage.NormalizeChord(b.Chord)
		if chord != "" && strings.HasSuffix(typed, chord) {
			m.resetLocked()
			return b, true
		}
	}
	return startpage.Bookmark{}, false
}

// Buffer returns the keys typed since the last reset.
func (m *Matcher) Buffer() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buffer.String()
}

// Reset clears the buffer and cancels the pending reset.
func (m *Matcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
}

// restartTimer replaces the pending reset with a new one. A reset that has
// already fired but not yet acquired the lock sees a newer generation and
// does nothing.
func (m *Matcher) restartTimer() {
	if m.timer != nil {
		m.timer.Stop()
	}
	m.gen++
	gen := m.gen
	m.timer = m.afterFunc(m.timeout, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.gen == gen {
			m.buffer.Reset()
			m.timer = nil
		}
	})
}

func (m *Matcher) resetLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.gen++
	m.buffer.Reset()
}
