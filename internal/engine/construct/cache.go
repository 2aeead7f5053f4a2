package construct

import (
	"iter"
	"slices"

	"go.trai.ch/handler/internal/core/domain"
)

// Cache is an insertion-ordered map from block id to record.
// Overwriting an existing id keeps its original position.
type Cache struct {
	order   []any
	records map[any]domain.Record
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{records: make(map[any]domain.Record)}
}

// Set stores rec at id.
func (c *Cache) Set(id any, rec domain.Record) {
	if _, ok := c.records[id]; !ok {
		c.order = append(c.order, id)
	}
	c.records[id] = rec
}

// Get returns the record stored at id.
func (c *Cache) Get(id any) (domain.Record, bool) {
	rec, ok := c.records[id]
	return rec, ok
}

// Delete removes id, reporting whether it was present.
func (c *Cache) Delete(id any) bool {
	if _, ok := c.records[id]; !ok {
		return false
	}
	delete(c.records, id)
	if i := slices.Index(c.order, id); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	return true
}

// Len returns the number of cached records.
func (c *Cache) Len() int {
	return len(c.records)
}

// Keys returns the cached ids in insertion order.
func (c *Cache) Keys() []any {
	return slices.Clone(c.order)
}

// All iterates the cache in insertion order.
func (c *Cache) All() iter.Seq2[any, domain.Record] {
	return func(yield func(any, domain.Record) bool) {
		for _, id := range c.order {
			if !yield(id, c.records[id]) {
				return
			}
		}
	}
}
