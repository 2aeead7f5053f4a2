package kv

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.KeyValueAdapter = (*File)(nil)

// File is an adapter backed by a single JSON document. Every write replaces
// the document atomically.
//
// Numbers read back from disk are float64.
type File struct {
	path    string
	mu      sync.RWMutex
	entries map[string]map[string]any
}

// NewFile opens the document at path, creating it on first write.
func NewFile(path string) (*File, error) {
	f := &File{
		path:    filepath.Clean(path),
		entries: make(map[string]map[string]any),
	}
	if err := f.load(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", f.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &f.entries); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", f.path)
	}
	return nil
}

// saveLocked writes the document. The caller holds the write lock.
func (f *File) saveLocked() error {
	data, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", f.path)
	}

	if err := atomic.WriteFile(f.path, bytes.NewReader(data)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", f.path)
	}
	return nil
}

// Get returns the object stored at key.
func (f *File) Get(key string) (map[string]any, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.entries[key]
	return maps.Clone(v), ok, nil
}

// Set replaces the object stored at key and persists the document.
func (f *File) Set(key string, value map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = maps.Clone(value)
	return f.saveLocked()
}

// Delete removes key and persists the document if it existed.
func (f *File) Delete(key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[key]; !ok {
		return false, nil
	}
	delete(f.entries, key)
	return true, f.saveLocked()
}

// Clear removes every key and persists the empty document.
func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.entries)
	return f.saveLocked()
}
