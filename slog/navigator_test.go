package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/startpage/mock"
	spslog "github.com/fwojciec/startpage/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingNavigator_Open(t *testing.T) {
	t.Parallel()

	t.Run("logs url", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var opened string
		inner := &mock.Navigator{
			OpenFn: func(_ context.Context, url string) error {
				opened = url
				return nil
			},
		}

		nav := spslog.NewLoggingNavigator(inner, logger)
		err := nav.Open(context.Background(), "https://github.com")

		require.NoError(t, err)
		assert.Equal(t, "https://github.com", opened)
		assert.Contains(t, buf.String(), "url=https://github.com")
	})

	t.Run("logs error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Navigator{
			OpenFn: func(_ context.Context, _ string) error {
				return errors.New("no opener")
			},
		}

		nav := spslog.NewLoggingNavigator(inner, logger)
		err := nav.Open(context.Background(), "https://github.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="no opener"`)
	})
}
