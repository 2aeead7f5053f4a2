// Package flatdata implements a flat key/value store whose entries are read
// through a fallback layer of defaults.
package flatdata

import (
	"maps"
	"slices"
	"sync"
)

// Source is anything that can be stored as a flat object.
type Source interface {
	FlatData() map[string]any
}

// Data is a raw flat object.
type Data map[string]any

// FlatData returns d itself.
func (d Data) FlatData() map[string]any {
	return d
}

// Wrapper pairs an entry's data with the store's defaults.
type Wrapper struct {
	id any

	mu       sync.RWMutex
	data     map[string]any
	defaults map[string]any

	viewOnce sync.Once
	view     *View
}

// NewWrapper copies data and defaults into a new wrapper.
func NewWrapper(data, defaults map[string]any, id any) *Wrapper {
	d := maps.Clone(data)
	if d == nil {
		d = make(map[string]any)
	}
	def := maps.Clone(defaults)
	if def == nil {
		def = make(map[string]any)
	}
	return &Wrapper{id: id, data: d, defaults: def}
}

// ID returns the key the wrapper was read from, or nil.
func (w *Wrapper) ID() any {
	return w.id
}

// FlatData returns a copy of the wrapped data without defaults.
func (w *Wrapper) FlatData() map[string]any {
	if w == nil {
		return nil
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return maps.Clone(w.data)
}

// Defaults returns a copy of the defaults.
func (w *Wrapper) Defaults() map[string]any {
	return maps.Clone(w.defaults)
}

// View returns the read-fallback view of the wrapper. It is built once.
func (w *Wrapper) View() *View {
	w.viewOnce.Do(func() {
		w.view = &View{w: w}
	})
	return w.view
}

// View reads data with a fallback to defaults. Writes, deletes and key
// listing only touch data.
type View struct {
	w *Wrapper
}

// Get returns data[key] if present, else defaults[key].
func (v *View) Get(key string) (any, bool) {
	v.w.mu.RLock()
	defer v.w.mu.RUnlock()
	if val, ok := v.w.data[key]; ok {
		return val, true
	}
	val, ok := v.w.defaults[key]
	return val, ok
}

// Set writes key into data.
func (v *View) Set(key string, val any) {
	v.w.mu.Lock()
	defer v.w.mu.Unlock()
	v.w.data[key] = val
}

// Delete removes key from data, reporting whether it was present.
// A default for key stays readable afterwards.
func (v *View) Delete(key string) bool {
	v.w.mu.Lock()
	defer v.w.mu.Unlock()
	_, ok := v.w.data[key]
	delete(v.w.data, key)
	return ok
}

// Keys returns the keys present in data, sorted.
func (v *View) Keys() []string {
	v.w.mu.RLock()
	defer v.w.mu.RUnlock()
	return slices.Sorted(maps.Keys(v.w.data))
}

// resolve unwraps a source for storage, reporting false for nil values.
func resolve(value Source) (map[string]any, bool) {
	if value == nil {
		return nil, false
	}
	if w, ok := value.(*Wrapper); ok && w == nil {
		return nil, false
	}
	data := value.FlatData()
	if data == nil {
		return nil, false
	}
	return maps.Clone(data), true
}

func merge(existing, patch map[string]any) map[string]any {
	merged := make(map[string]any, len(existing)+len(patch))
	maps.Copy(merged, existing)
	maps.Copy(merged, patch)
	return merged
}
