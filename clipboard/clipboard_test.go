package clipboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/startpage/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboard_WriteText(t *testing.T) {
	t.Parallel()

	t.Run("passes text to writer", func(t *testing.T) {
		t.Parallel()

		var got string
		cb := clipboard.NewWithWriter(func(s string) error {
			got = s
			return nil
		})

		require.NoError(t, cb.WriteText(context.Background(), "Tuesday, 3/5/2024, 14:07:09"))
		assert.Equal(t, "Tuesday, 3/5/2024, 14:07:09", got)
	})

	t.Run("returns writer error", func(t *testing.T) {
		t.Parallel()

		cb := clipboard.NewWithWriter(func(string) error { return errors.New("no display") })

		require.Error(t, cb.WriteText(context.Background(), "x"))
	})

	t.Run("skips write when context is done", func(t *testing.T) {
		t.Parallel()

		cb := clipboard.NewWithWriter(func(string) error {
			t.Fatal("unexpected write")
			return nil
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, cb.WriteText(ctx, "x"), context.Canceled)
	})
}
