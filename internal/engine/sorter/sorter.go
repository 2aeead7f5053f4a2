// Package sorter routes records to constructs by type tag, falling back to
// the record's Go type when the tag is absent or unregistered.
package sorter

import (
	"reflect"
	"slices"
	"sync"

	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/engine/construct"
)

// TypeOf returns the class value for T, for use with RegisterClass.
// Pass an interface type to match every record implementing it.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

type classBinding struct {
	tag   string
	class reflect.Type
}

// Sorter loads records into the construct registered for them.
// Records matching no registration are ignored.
type Sorter struct {
	mu      sync.RWMutex
	index   map[string]construct.Construct
	classes []classBinding
}

// New creates an empty sorter.
func New() *Sorter {
	return &Sorter{index: make(map[string]construct.Construct)}
}

// RegisterType binds tag to c, replacing any previous binding.
// Empty tags and nil constructs are ignored.
func (s *Sorter) RegisterType(tag string, c construct.Construct) *Sorter {
	if tag == "" || c == nil {
		return s
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index[tag] = c
	return s
}

// RegisterClass binds class to tag for records without a usable tag.
// When c is non-nil the tag is also registered with it.
// Rebinding a tag keeps its original position in the scan order.
func (s *Sorter) RegisterClass(tag string, class reflect.Type, c construct.Construct) *Sorter {
	if tag == "" || class == nil {
		return s
	}
	s.mu.Lock()
	if i := s.classIndex(tag); i >= 0 {
		s.classes[i].class = class
	} else {
		s.classes = append(s.classes, classBinding{tag: tag, class: class})
	}
	s.mu.Unlock()

	if c != nil {
		return s.RegisterType(tag, c)
	}
	return s
}

// RemoveType removes the construct bound to tag. With cascade, the class
// bound to the same tag is removed too.
func (s *Sorter) RemoveType(tag string, cascade bool) *Sorter {
	if tag == "" {
		return s
	}
	s.mu.Lock()
	delete(s.index, tag)
	s.mu.Unlock()

	if cascade {
		return s.RemoveClass(tag, false)
	}
	return s
}

// RemoveClass removes the class bound to tag. With cascade, the construct
// bound to the same tag is removed too.
func (s *Sorter) RemoveClass(tag string, cascade bool) *Sorter {
	if tag == "" {
		return s
	}
	s.mu.Lock()
	if i := s.classIndex(tag); i >= 0 {
		s.classes = slices.Delete(s.classes, i, i+1)
	}
	s.mu.Unlock()

	if cascade {
		return s.RemoveType(tag, false)
	}
	return s
}

// Remove removes both the construct and the class bound to tag. It is the
// cascading form of RemoveType and RemoveClass.
func (s *Sorter) Remove(tag string) *Sorter {
	return s.RemoveType(tag, true)
}

// Load dispatches each record to its construct. Nil records are skipped.
func (s *Sorter) Load(recs ...domain.Record) *Sorter {
	for _, rec := range recs {
		if isNil(rec) {
			continue
		}
		if c := s.resolve(rec); c != nil {
			c.Load(rec)
		}
	}
	return s
}

// Unload removes each record from the construct it would be dispatched to.
func (s *Sorter) Unload(recs ...domain.Record) *Sorter {
	for _, rec := range recs {
		if isNil(rec) {
			continue
		}
		if c := s.resolve(rec); c != nil {
			c.Unload(rec)
		}
	}
	return s
}

// Construct returns the construct registered for tag.
func (s *Sorter) Construct(tag string) (construct.Construct, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.index[tag]
	return c, ok
}

func (s *Sorter) resolve(rec domain.Record) construct.Construct {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if tag := rec.TypeTag(); tag != "" {
		if c, ok := s.index[tag]; ok {
			return c
		}
	}
	if len(s.classes) == 0 {
		return nil
	}
	t := reflect.TypeOf(rec)
	for _, b := range s.classes {
		if !instanceOf(t, b.class) {
			continue
		}
		if c, ok := s.index[b.tag]; ok {
			return c
		}
	}
	return nil
}

func (s *Sorter) classIndex(tag string) int {
	return slices.IndexFunc(s.classes, func(b classBinding) bool { return b.tag == tag })
}

func instanceOf(t, class reflect.Type) bool {
	switch {
	case t == class:
		return true
	case class.Kind() == reflect.Interface:
		return t.Implements(class)
	case t.Kind() == reflect.Pointer:
		return t.Elem() == class
	default:
		return false
	}
}

func isNil(rec domain.Record) bool {
	if rec == nil {
		return true
	}
	v := reflect.ValueOf(rec)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
