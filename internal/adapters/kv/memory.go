// Package kv implements key/value adapters for the settings store.
package kv

import (
	"maps"
	"sync"

	"go.trai.ch/handler/internal/core/ports"
)

var _ ports.KeyValueAdapter = (*Memory)(nil)

// Memory is a process-local adapter. Values are copied on the way in and out.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]map[string]any
}

// NewMemory creates an empty in-memory adapter.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]map[string]any)}
}

// Get returns the object stored at key.
func (m *Memory) Get(key string) (map[string]any, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return maps.Clone(v), ok, nil
}

// Set replaces the object stored at key.
func (m *Memory) Set(key string, value map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = maps.Clone(value)
	return nil
}

// Delete removes key.
func (m *Memory) Delete(key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	delete(m.entries, key)
	return ok, nil
}

// Clear removes every key.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.entries)
	return nil
}
