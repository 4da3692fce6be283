package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStore(t *testing.T) {
	t.Parallel()

	var _ startpage.Store = mock.NewMapStore(nil)

	t.Run("copies seed entries", func(t *testing.T) {
		t.Parallel()

		seed := map[string]string{startpage.KeyTheme: "dark"}
		store := mock.NewMapStore(seed)
		seed[startpage.KeyTheme] = "light"

		value, ok := store.Value(startpage.KeyTheme)
		assert.True(t, ok)
		assert.Equal(t, "dark", value)
	})

	t.Run("set get remove", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMapStore(nil)
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "k", "v"))
		v, ok, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", v)

		require.NoError(t, store.Remove(ctx, "k"))
		_, ok, err = store.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
