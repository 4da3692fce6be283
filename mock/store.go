package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/startpage"
)

var _ startpage.Store = (*Store)(nil)

// Store is a mock implementation of startpage.Store.
type Store struct {
	GetFn    func(ctx context.Context, key string) (string, bool, error)
	SetFn    func(ctx context.Context, key, value string) error
	RemoveFn func(ctx context.Context, key string) error
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	return s.GetFn(ctx, key)
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.SetFn(ctx, key, value)
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.RemoveFn(ctx, key)
}

var _ startpage.Store = (*MapStore)(nil)

// MapStore is an in-memory startpage.Store for tests that need working
// persistence rather than call assertions.
type MapStore struct {
	mu      sync.Mutex
	Entries map[string]string
}

// NewMapStore returns a MapStore seeded with entries.
func NewMapStore(entries map[string]string) *MapStore {
	m := make(map[string]string, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &MapStore{Entries: m}
}

func (s *MapStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.Entries[key]
	return v, ok, nil
}

func (s *MapStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Entries[key] = value
	return nil
}

func (s *MapStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Entries, key)
	return nil
}

// Value returns the raw value stored under key.
func (s *MapStore) Value(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.Entries[key]
	return v, ok
}
