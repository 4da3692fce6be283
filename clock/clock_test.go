package clock_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/clock"
	"github.com/fwojciec/startpage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday 5 March 2024, 14:07:09.
var fixed = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

func fixedClock(locale startpage.Locale, format startpage.TimeFormat) *clock.Clock {
	c := clock.New(locale, func() startpage.TimeFormat { return format })
	c.Now = func() time.Time { return fixed }
	return c
}

func TestClock_Face(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		locale startpage.Locale
		format startpage.TimeFormat
		want   startpage.Face
	}{
		{"english default", startpage.LocaleEN, startpage.TimeFormatUnset, startpage.Face{Time: "14:07:09", Date: "Tuesday, 3/5/2024"}},
		{"english 12 hour", startpage.LocaleEN, startpage.TimeFormat12, startpage.Face{Time: "02:07:09 PM", Date: "Tuesday, 3/5/2024"}},
		{"polish 24 hour", startpage.LocalePL, startpage.TimeFormat24, startpage.Face{Time: "14:07:09", Date: "Wtorek, 5.03.2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fixedClock(tt.locale, tt.format).Current())
		})
	}
}

func TestClock_FormatFollowsSource(t *testing.T) {
	t.Parallel()

	format := startpage.TimeFormat24
	c := clock.New(startpage.LocaleEN, func() startpage.TimeFormat { return format })
	c.Now = func() time.Time { return fixed }

	assert.Equal(t, "14:07:09", c.Current().Time)

	format = startpage.TimeFormat12
	assert.Equal(t, "02:07:09 PM", c.Current().Time)
}

func TestClock_Copy(t *testing.T) {
	t.Parallel()

	t.Run("writes timestamp and reports success", func(t *testing.T) {
		t.Parallel()

		var written string
		cb := &mock.Clipboard{WriteTextFn: func(_ context.Context, text string) error {
			written = text
			return nil
		}}

		msg, err := fixedClock(startpage.LocaleEN, "").Copy(context.Background(), cb)

		require.NoError(t, err)
		assert.Equal(t, "Date and time copied", msg)
		assert.Equal(t, "Tuesday, 3/5/2024, 14:07:09", written)
	})

	t.Run("reports failure once", func(t *testing.T) {
		t.Parallel()

		calls := 0
		cb := &mock.Clipboard{WriteTextFn: func(context.Context, string) error {
			calls++
			return errors.New("denied")
		}}

		msg, err := fixedClock(startpage.LocaleEN, "").Copy(context.Background(), cb)

		require.Error(t, err)
		assert.Equal(t, "Copy failed", msg)
		assert.Equal(t, 1, calls)
	})
}

func TestResultMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, clock.CopiedMessage, clock.ResultMessage(true))
	assert.Equal(t, clock.CopyFailedMessage, clock.ResultMessage(false))
}

func TestClock_Run(t *testing.T) {
	t.Parallel()

	t.Run("emits immediately and stops on cancel", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		var ticks atomic.Int32
		done := make(chan error, 1)

		go func() {
			done <- fixedClock(startpage.LocaleEN, "").Run(ctx, func(startpage.Face) {
				ticks.Add(1)
			})
		}()

		require.Eventually(t, func() bool { return ticks.Load() >= 1 }, time.Second, 5*time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})
}
