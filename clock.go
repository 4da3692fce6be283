package startpage

import (
	"context"
	"fmt"
	"time"
)

// Locale holds the date presentation rules for the clock.
type Locale struct {
	Name           string
	Weekdays       [7]string // indexed by time.Weekday
	DateLayout     string
	DateTimeLayout string
}

// Built-in locales.
var (
	LocaleEN = Locale{
		Name:           "en",
		Weekdays:       [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		DateLayout:     "1/2/2006",
		DateTimeLayout: "1/2/2006, 15:04:05",
	}
	LocalePL = Locale{
		Name:           "pl",
		Weekdays:       [7]string{"Niedziela", "Poniedziałek", "Wtorek", "Środa", "Czwartek", "Piątek", "Sobota"},
		DateLayout:     "2.01.2006",
		DateTimeLayout: "2.01.2006, 15:04:05",
	}
)

// LookupLocale returns the locale named name, or LocaleEN if unknown.
func LookupLocale(name string) Locale {
	if name == LocalePL.Name {
		return LocalePL
	}
	return LocaleEN
}

// Weekday returns the locale's name for t's weekday.
func (l Locale) Weekday(t time.Time) string {
	return l.Weekdays[t.Weekday()]
}

// FormatTime formats the time of day. TimeFormat12 produces zero-padded
// "hh:mm:ss AM"; every other value uses 24-hour "15:04:05".
func FormatTime(t time.Time, format TimeFormat) string {
	if format != TimeFormat12 {
		return t.Format("15:04:05")
	}
	ampm := "AM"
	if t.Hour() >= 12 {
		ampm = "PM"
	}
	hh := t.Hour() % 12
	if hh == 0 {
		hh = 12
	}
	return fmt.Sprintf("%02d:%02d:%02d %s", hh, t.Minute(), t.Second(), ampm)
}

// FormatDate formats the date line shown under the clock: "<weekday>, <date>".
func FormatDate(t time.Time, loc Locale) string {
	return loc.Weekday(t) + ", " + t.Format(loc.DateLayout)
}

// FormatTimestamp formats the string copied when the clock is clicked:
// "<weekday>, <date>, <time>".
func FormatTimestamp(t time.Time, loc Locale) string {
	return loc.Weekday(t) + ", " + t.Format(loc.DateTimeLayout)
}

// Face is one rendering of the clock.
type Face struct {
	Time string `json:"time"`
	Date string `json:"date"`
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}
