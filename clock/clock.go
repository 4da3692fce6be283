// Package clock drives the start page clock: the formatted face shown every
// second and the timestamp copied on click.
package clock

import (
	"context"
	"time"

	"github.com/fwojciec/startpage"
)

// Toast messages reported after a copy attempt.
const (
	CopiedMessage     = "Date and time copied"
	CopyFailedMessage = "Copy failed"
)

// Interval is the tick period of Run.
const Interval = time.Second

// FormatSource returns the time format preference in effect.
type FormatSource func() startpage.TimeFormat

// Clock formats the current time for a locale.
type Clock struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Format returns the time format preference. Defaults to locale default.
	Format FormatSource

	Locale startpage.Locale
}

// New returns a Clock for locale.
func New(locale startpage.Locale, format FormatSource) *Clock {
	return &Clock{
		Now:    time.Now,
		Format: format,
		Locale: locale,
	}
}

func (c *Clock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *Clock) format() startpage.TimeFormat {
	if c.Format == nil {
		return startpage.TimeFormatUnset
	}
	return c.Format()
}

// Face renders t.
func (c *Clock) Face(t time.Time) startpage.Face {
	return startpage.Face{
		Time: startpage.FormatTime(t, c.format()),
		Date: startpage.FormatDate(t, c.Locale),
	}
}

// Current renders the current time.
func (c *Clock) Current() startpage.Face {
	return c.Face(c.now())
}

// Timestamp returns the string copied when the clock is clicked.
func (c *Clock) Timestamp() string {
	return startpage.FormatTimestamp(c.now(), c.Locale)
}

// Run calls fn with the current face immediately and then every Interval
// until ctx is done. It returns ctx.Err().
func (c *Clock) Run(ctx context.Context, fn func(startpage.Face)) error {
	fn(c.Current())

	ticker := time.NewTicker(Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn(c.Current())
		}
	}
}

// Copy writes the current timestamp to cb and returns the toast message
// describing the outcome. Failures are not retried.
func (c *Clock) Copy(ctx context.Context, cb startpage.Clipboard) (string, error) {
	if err := cb.WriteText(ctx, c.Timestamp()); err != nil {
		return CopyFailedMessage, err
	}
	return CopiedMessage, nil
}

// ResultMessage maps a copy outcome reported by the page to its toast.
func ResultMessage(ok bool) string {
	if ok {
		return CopiedMessage
	}
	return CopyFailedMessage
}
