package construct

import (
	"slices"
	"sort"
	"sync"

	"go.trai.ch/handler/internal/core/domain"
)

var _ Construct = (*Module)(nil)

// Module is a construct that also indexes loaded ids by module specifier.
//
// Each cached id appears exactly once, in the bucket of the specifier it was
// loaded under. Buckets are dropped as soon as they empty.
type Module struct {
	inner Construct

	mu      sync.RWMutex
	index   map[string][]any
	indexed map[any]string
}

// NewModule wraps inner with a module index. A nil inner gets a new Base.
func NewModule(inner Construct) *Module {
	if inner == nil {
		inner = NewBase()
	}
	return &Module{
		inner:   inner,
		index:   make(map[string][]any),
		indexed: make(map[any]string),
	}
}

// Load loads rec into the wrapped construct and, if it was accepted, indexes
// it under its module specifier. A rejected record leaves the index untouched.
func (m *Module) Load(rec domain.Record) bool {
	if rec == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.inner.Load(rec) {
		return false
	}

	id := rec.BlockID()
	if prev, ok := m.indexed[id]; ok {
		m.removeLocked(prev, id)
	}
	spec := rec.ModuleSpecifier()
	m.index[spec] = append(m.index[spec], id)
	m.indexed[id] = spec
	return true
}

// Unload removes rec's id from the index, then unloads it from the wrapped construct.
// The id is removed from the bucket it was indexed under even if the record's
// specifier changed after load.
func (m *Module) Unload(rec domain.Record) bool {
	if rec == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id := rec.BlockID()
	if spec, ok := m.indexed[id]; ok {
		m.removeLocked(spec, id)
	}

	return m.inner.Unload(rec)
}

func (m *Module) removeLocked(spec string, id any) {
	delete(m.indexed, id)
	bucket := m.index[spec]
	if i := slices.Index(bucket, id); i >= 0 {
		bucket = slices.Delete(bucket, i, i+1)
	}
	if len(bucket) == 0 {
		delete(m.index, spec)
		return
	}
	m.index[spec] = bucket
}

// IDs returns the ids loaded from specifier, in load order.
func (m *Module) IDs(specifier string) []any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.index[specifier])
}

// Specifiers returns every indexed module specifier in lexical order.
func (m *Module) Specifiers() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	specs := make([]string, 0, len(m.index))
	for spec := range m.index {
		specs = append(specs, spec)
	}
	sort.Strings(specs)
	return specs
}

// RecordsFrom returns the cached records loaded from specifier, in load order.
func (m *Module) RecordsFrom(specifier string) []domain.Record {
	ids := m.IDs(specifier)
	out := make([]domain.Record, 0, len(ids))
	for _, id := range ids {
		if rec, ok := m.inner.Get(id); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Get returns the record cached at id.
func (m *Module) Get(id any) (domain.Record, bool) {
	return m.inner.Get(id)
}

// Records returns the cached records in insertion order.
func (m *Module) Records() []domain.Record {
	return m.inner.Records()
}

// Len returns the number of cached records.
func (m *Module) Len() int {
	return m.inner.Len()
}
