// Package construct implements caches of identified records with a common
// load/unload contract. Specialised constructs wrap another construct and
// forward to it after applying their own effects.
package construct

import (
	"sync"

	"go.trai.ch/handler/internal/core/domain"
)

// Construct owns a cache of records keyed by id.
type Construct interface {
	// Load stores rec at its id, replacing any previous entry.
	Load(rec domain.Record) bool
	// Unload removes the entry at rec's id, reporting whether one existed.
	Unload(rec domain.Record) bool
	// Get returns the record cached at id.
	Get(id any) (domain.Record, bool)
	// Records returns the cached records in insertion order.
	Records() []domain.Record
	// Len returns the number of cached records.
	Len() int
}

var _ Construct = (*Base)(nil)

// Base is the plain cache-backed construct.
type Base struct {
	mu    sync.RWMutex
	cache *Cache
}

// NewBase creates an empty construct.
func NewBase() *Base {
	return &Base{cache: NewCache()}
}

// Load stores rec at its id. A nil record is not loaded.
func (b *Base) Load(rec domain.Record) bool {
	if rec == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cache.Set(rec.BlockID(), rec)
	return true
}

// Unload removes the entry at rec's id.
func (b *Base) Unload(rec domain.Record) bool {
	if rec == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cache.Delete(rec.BlockID())
}

// Get returns the record cached at id.
func (b *Base) Get(id any) (domain.Record, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cache.Get(id)
}

// Records returns the cached records in insertion order.
func (b *Base) Records() []domain.Record {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Record, 0, b.cache.Len())
	for _, rec := range b.cache.All() {
		out = append(out, rec)
	}
	return out
}

// Len returns the number of cached records.
func (b *Base) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cache.Len()
}

// LoadFrom records specifier as rec's module and loads it into c.
func LoadFrom(c Construct, rec domain.Record, specifier string) bool {
	if rec == nil {
		return false
	}
	rec.SetModuleSpecifier(specifier)
	return c.Load(rec)
}
