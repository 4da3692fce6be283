package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/mock"
	"github.com/fwojciec/startpage/registry"
	"github.com/fwojciec/startpage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedRegistry(t *testing.T, store startpage.Store) *registry.Registry {
	t.Helper()
	r := registry.NewRegistry(store, nil)
	r.Load(context.Background())
	return r
}

func TestRegistry_Load(t *testing.T) {
	t.Parallel()

	fallbacks := map[string]map[string]string{
		"empty storage":      {},
		"empty value":        {startpage.KeyBookmarks: ""},
		"corrupt JSON":       {startpage.KeyBookmarks: "[{"},
		"JSON null":          {startpage.KeyBookmarks: "null"},
		"non-array JSON":     {startpage.KeyBookmarks: `{"title":"x"}`},
		"wrongly typed list": {startpage.KeyBookmarks: `[{"title":1}]`},
	}

	for name, entries := range fallbacks {
		t.Run("falls back to defaults on "+name, func(t *testing.T) {
			t.Parallel()

			r := loadedRegistry(t, mock.NewMapStore(entries))

			assert.Equal(t, startpage.DefaultBookmarks(), r.Bookmarks())
		})
	}

	t.Run("falls back to defaults when store fails", func(t *testing.T) {
		t.Parallel()

		store := &mock.Store{
			GetFn: func(context.Context, string) (string, bool, error) {
				return "", false, errors.New("disk error")
			},
		}

		r := loadedRegistry(t, store)

		assert.Equal(t, startpage.DefaultBookmarks(), r.Bookmarks())
	})

	t.Run("keeps a stored empty list", func(t *testing.T) {
		t.Parallel()

		r := loadedRegistry(t, mock.NewMapStore(map[string]string{startpage.KeyBookmarks: "[]"}))

		assert.Empty(t, r.Bookmarks())
	})

	t.Run("reads stored list in order", func(t *testing.T) {
		t.Parallel()

		r := loadedRegistry(t, mock.NewMapStore(map[string]string{
			startpage.KeyBookmarks: `[{"title":"B","url":"https://b","chord":"B"},{"title":"A","url":"https://a","chord":""}]`,
		}))

		assert.Equal(t, []startpage.Bookmark{
			{Title: "B", URL: "https://b", Chord: "B"},
			{Title: "A", URL: "https://a"},
		}, r.Bookmarks())
	})
}

func TestRegistry_RoundTrip(t *testing.T) {
	t.Parallel()

	lists := map[string][]startpage.Bookmark{
		"defaults": startpage.DefaultBookmarks(),
		"markup in titles": {
			{Title: "<b>Tom & Jerry</b>", URL: "https://x.com/?a=1&b=2", Chord: "T J"},
			{Title: "zażółć", URL: "https://pl.wikipedia.org", Chord: ""},
		},
		"empty": {},
	}

	for name, list := range lists {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			db := sqlite.NewDB(":memory:")
			require.NoError(t, db.Open())
			t.Cleanup(func() { db.Close() })
			store := sqlite.NewStore(db)
			ctx := context.Background()

			require.NoError(t, registry.NewRegistry(store, nil).ImportBookmarks(ctx, list))

			got := loadedRegistry(t, store).Bookmarks()
			assert.Equal(t, list, got)
		})
	}
}

func TestRegistry_AddBookmark(t *testing.T) {
	t.Parallel()

	t.Run("normalizes URL and chord then persists", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMapStore(map[string]string{startpage.KeyBookmarks: "[]"})
		r := loadedRegistry(t, store)

		err := r.AddBookmark(context.Background(), startpage.Bookmark{Title: "Example", URL: "example.com", Chord: "e x"})
		require.NoError(t, err)

		want := []startpage.Bookmark{{Title: "Example", URL: "https://example.com", Chord: "E X"}}
		assert.Equal(t, want, r.Bookmarks())
		raw, _ := store.Value(startpage.KeyBookmarks)
		assert.JSONEq(t, `[{"title":"Example","url":"https://example.com","chord":"E X"}]`, raw)
	})

	t.Run("keeps explicit http scheme", func(t *testing.T) {
		t.Parallel()

		r := loadedRegistry(t, mock.NewMapStore(map[string]string{startpage.KeyBookmarks: "[]"}))

		require.NoError(t, r.AddBookmark(context.Background(), startpage.Bookmark{Title: "X", URL: "http://x.com"}))

		assert.Equal(t, "http://x.com", r.Bookmarks()[0].URL)
	})

	t.Run("appends after defaults", func(t *testing.T) {
		t.Parallel()

		r := loadedRegistry(t, mock.NewMapStore(nil))

		require.NoError(t, r.AddBookmark(context.Background(), startpage.Bookmark{Title: "Go", URL: "go.dev"}))

		got := r.Bookmarks()
		require.Len(t, got, 7)
		assert.Equal(t, "Go", got[6].Title)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMapStore(nil)
		r := loadedRegistry(t, store)

		err := r.AddBookmark(context.Background(), startpage.Bookmark{URL: "go.dev"})

		assert.Equal(t, startpage.EINVALID, startpage.ErrorCode(err))
		_, written := store.Value(startpage.KeyBookmarks)
		assert.False(t, written)
	})

	t.Run("leaves list unchanged when store write fails", func(t *testing.T) {
		t.Parallel()

		store := &mock.Store{
			GetFn: func(context.Context, string) (string, bool, error) { return "", false, nil },
			SetFn: func(context.Context, string, string) error { return errors.New("disk full") },
		}
		r := loadedRegistry(t, store)

		err := r.AddBookmark(context.Background(), startpage.Bookmark{Title: "Go", URL: "go.dev"})

		require.Error(t, err)
		assert.Equal(t, startpage.DefaultBookmarks(), r.Bookmarks())
	})
}

func TestRegistry_UpdateBookmark(t *testing.T) {
	t.Parallel()

	t.Run("replaces bookmark at index", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMapStore(nil)
		r := loadedRegistry(t, store)

		err := r.UpdateBookmark(context.Background(), 1, startpage.Bookmark{Title: "GitLab", URL: "gitlab.com", Chord: "gl"})
		require.NoError(t, err)

		got := r.Bookmarks()
		assert.Equal(t, startpage.Bookmark{Title: "GitLab", URL: "https://gitlab.com", Chord: "GL"}, got[1])
		assert.Equal(t, "Hacker News", got[0].Title)
		assert.Len(t, got, 6)

		reloaded := loadedRegistry(t, store).Bookmarks()
		assert.Equal(t, got, reloaded)
	})

	for _, index := range []int{-1, 6, 100} {
		t.Run("rejects out of range index", func(t *testing.T) {
			t.Parallel()

			r := loadedRegistry(t, mock.NewMapStore(nil))

			err := r.UpdateBookmark(context.Background(), index, startpage.Bookmark{Title: "X", URL: "x.com"})

			require.Error(t, err)
			assert.Equal(t, startpage.EINVALID, startpage.ErrorCode(err))
			assert.Contains(t, startpage.ErrorMessage(err), "invalid index")
			assert.Equal(t, startpage.DefaultBookmarks(), r.Bookmarks())
		})
	}
}

func TestRegistry_DeleteBookmark(t *testing.T) {
	t.Parallel()

	t.Run("removes bookmark at index", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMapStore(nil)
		r := loadedRegistry(t, store)

		require.NoError(t, r.DeleteBookmark(context.Background(), 0))

		got := r.Bookmarks()
		require.Len(t, got, 5)
		assert.Equal(t, "GitHub", got[0].Title)
		assert.Equal(t, got, loadedRegistry(t, store).Bookmarks())
	})

	t.Run("deleting every bookmark persists an empty list", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMapStore(nil)
		r := loadedRegistry(t, store)
		for r.Len() > 0 {
			require.NoError(t, r.DeleteBookmark(context.Background(), r.Len()-1))
		}

		raw, _ := store.Value(startpage.KeyBookmarks)
		assert.Equal(t, "[]", raw)
		assert.Empty(t, loadedRegistry(t, store).Bookmarks())
	})

	t.Run("rejects out of range index", func(t *testing.T) {
		t.Parallel()

		r := loadedRegistry(t, mock.NewMapStore(nil))

		err := r.DeleteBookmark(context.Background(), 6)

		assert.Equal(t, startpage.EINVALID, startpage.ErrorCode(err))
		assert.Len(t, r.Bookmarks(), 6)
	})
}

func TestRegistry_ImportBookmarks(t *testing.T) {
	t.Parallel()

	t.Run("replaces registry with coerced records", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMapStore(nil)
		r := loadedRegistry(t, store)
		imported, err := startpage.ParseImport([]byte(`[{"name":"X"}]`))
		require.NoError(t, err)

		require.NoError(t, r.ImportBookmarks(context.Background(), imported))

		want := []startpage.Bookmark{{Title: "X", URL: "#", Chord: ""}}
		assert.Equal(t, want, r.Bookmarks())
		assert.Equal(t, want, loadedRegistry(t, store).Bookmarks())
	})
}

func TestRegistry_ExportBookmarks(t *testing.T) {
	t.Parallel()

	t.Run("pretty prints current list", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMapStore(map[string]string{
			startpage.KeyBookmarks: `[{"title":"A & B","url":"https://a","chord":"A"}]`,
		})
		r := loadedRegistry(t, store)

		data, err := r.ExportBookmarks(context.Background())
		require.NoError(t, err)

		want := "[\n  {\n    \"title\": \"A & B\",\n    \"url\": \"https://a\",\n    \"chord\": \"A\"\n  }\n]"
		assert.Equal(t, want, string(data))
	})

	t.Run("does not write to the store", func(t *testing.T) {
		t.Parallel()

		store := &mock.Store{
			GetFn: func(context.Context, string) (string, bool, error) { return "", false, nil },
			SetFn: func(context.Context, string, string) error {
				t.Fatal("export must not persist")
				return nil
			},
		}
		r := loadedRegistry(t, store)

		_, err := r.ExportBookmarks(context.Background())
		require.NoError(t, err)
	})
}
