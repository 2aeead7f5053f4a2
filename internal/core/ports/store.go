package ports

import (
	"context"

	"go.trai.ch/handler/internal/core/domain"
)

// KeyValueAdapter is a synchronous flat key/value backend.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type KeyValueAdapter interface {
	// Get returns the object stored at key and whether it exists.
	Get(key string) (map[string]any, bool, error)
	// Set replaces the object stored at key.
	Set(key string, value map[string]any) error
	// Delete removes key, reporting whether it existed.
	Delete(key string) (bool, error)
	// Clear removes every key.
	Clear() error
}

// AsyncKeyValueAdapter is a key/value backend whose calls may block on I/O.
type AsyncKeyValueAdapter interface {
	Get(ctx context.Context, key string) (map[string]any, bool, error)
	Set(ctx context.Context, key string, value map[string]any) error
	Delete(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// KeyValueOpener opens the settings backend described by a manifest.
// The returned adapter may implement io.Closer.
type KeyValueOpener interface {
	Open(ctx context.Context, spec domain.SettingsSpec) (AsyncKeyValueAdapter, error)
}
