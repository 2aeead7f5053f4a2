package flatdata

import (
	"context"
	"maps"

	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store is a flat key/value store over a synchronous adapter.
type Store struct {
	adapter  ports.KeyValueAdapter
	defaults map[string]any
}

// NewStore creates a store over adapter.
func NewStore(adapter ports.KeyValueAdapter, defaults map[string]any) (*Store, error) {
	if adapter == nil {
		return nil, domain.ErrMissingAdapter
	}
	return &Store{adapter: adapter, defaults: cloneDefaults(defaults)}, nil
}

// Get wraps the entry at key with the store defaults. A missing entry reads
// as an empty object.
func (s *Store) Get(key string) (*Wrapper, error) {
	data, _, err := s.adapter.Get(key)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to get entry"), "key", key)
	}
	return NewWrapper(data, s.defaults, key), nil
}

// Set replaces the entry at key. Nil values are rejected.
func (s *Store) Set(key string, value Source) error {
	data, ok := resolve(value)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrFalsyValue, "cannot set entry"), "key", key)
	}
	if err := s.adapter.Set(key, data); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set entry"), "key", key)
	}
	return nil
}

// Patch shallow-merges value over the entry at key. Keys in value win.
func (s *Store) Patch(key string, value Source) error {
	existing, _, err := s.adapter.Get(key)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to get entry"), "key", key)
	}
	patch, _ := resolve(value)
	if err := s.adapter.Set(key, merge(existing, patch)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set entry"), "key", key)
	}
	return nil
}

// Delete removes the entry at key, reporting whether it existed.
func (s *Store) Delete(key string) (bool, error) {
	ok, err := s.adapter.Delete(key)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to delete entry"), "key", key)
	}
	return ok, nil
}

// Clear removes every entry.
func (s *Store) Clear() error {
	return zerr.Wrap(s.adapter.Clear(), "failed to clear store")
}

// Defaults returns a copy of the store defaults.
func (s *Store) Defaults() map[string]any {
	return maps.Clone(s.defaults)
}

// AsyncStore is a flat key/value store over an adapter whose calls may block.
//
// Patch reads and then writes in two adapter calls. A concurrent Set or Patch
// on the same key between them is overwritten.
type AsyncStore struct {
	adapter  ports.AsyncKeyValueAdapter
	defaults map[string]any
}

// NewAsyncStore creates a store over adapter.
func NewAsyncStore(adapter ports.AsyncKeyValueAdapter, defaults map[string]any) (*AsyncStore, error) {
	if adapter == nil {
		return nil, domain.ErrMissingAdapter
	}
	return &AsyncStore{adapter: adapter, defaults: cloneDefaults(defaults)}, nil
}

// Get wraps the entry at key with the store defaults.
func (s *AsyncStore) Get(ctx context.Context, key string) (*Wrapper, error) {
	data, _, err := s.adapter.Get(ctx, key)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to get entry"), "key", key)
	}
	return NewWrapper(data, s.defaults, key), nil
}

// Set replaces the entry at key. Nil values are rejected.
func (s *AsyncStore) Set(ctx context.Context, key string, value Source) error {
	data, ok := resolve(value)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrFalsyValue, "cannot set entry"), "key", key)
	}
	if err := s.adapter.Set(ctx, key, data); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set entry"), "key", key)
	}
	return nil
}

// Patch shallow-merges value over the entry at key. Keys in value win.
func (s *AsyncStore) Patch(ctx context.Context, key string, value Source) error {
	existing, _, err := s.adapter.Get(ctx, key)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to get entry"), "key", key)
	}
	patch, _ := resolve(value)
	if err := s.adapter.Set(ctx, key, merge(existing, patch)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set entry"), "key", key)
	}
	return nil
}

// Delete removes the entry at key, reporting whether it existed.
func (s *AsyncStore) Delete(ctx context.Context, key string) (bool, error) {
	ok, err := s.adapter.Delete(ctx, key)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to delete entry"), "key", key)
	}
	return ok, nil
}

// Clear removes every entry.
func (s *AsyncStore) Clear(ctx context.Context) error {
	return zerr.Wrap(s.adapter.Clear(ctx), "failed to clear store")
}

// Defaults returns a copy of the store defaults.
func (s *AsyncStore) Defaults() map[string]any {
	return maps.Clone(s.defaults)
}

func cloneDefaults(defaults map[string]any) map[string]any {
	def := maps.Clone(defaults)
	if def == nil {
		def = make(map[string]any)
	}
	return def
}
