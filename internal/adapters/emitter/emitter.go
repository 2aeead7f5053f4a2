// Package emitter implements an in-process event emitter.
package emitter

import (
	"slices"
	"sync"

	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
)

var _ ports.Emitter = (*Emitter)(nil)

type registration struct {
	handle *domain.Handle
	once   bool
}

// Emitter dispatches events to listeners in registration order.
// Listeners run on the emitting goroutine without the emitter's lock held,
// so they may add or remove listeners.
type Emitter struct {
	mu     sync.Mutex
	events map[string][]registration
}

// New creates an emitter with no listeners.
func New() *Emitter {
	return &Emitter{events: make(map[string][]registration)}
}

// On attaches h for every emission of event.
func (e *Emitter) On(event string, h *domain.Handle) {
	e.add(event, h, false)
}

// Once attaches h for the next emission of event only.
func (e *Emitter) Once(event string, h *domain.Handle) {
	e.add(event, h, true)
}

func (e *Emitter) add(event string, h *domain.Handle, once bool) {
	if h == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events[event] = append(e.events[event], registration{handle: h, once: once})
}

// RemoveListener detaches the most recent registration of h for event.
func (e *Emitter) RemoveListener(event string, h *domain.Handle) {
	e.mu.Lock()
	defer e.mu.Unlock()

	regs := e.events[event]
	for i := len(regs) - 1; i >= 0; i-- {
		if regs[i].handle == h {
			e.setLocked(event, slices.Delete(slices.Clone(regs), i, i+1))
			return
		}
	}
}

// Listeners returns the handles attached for event.
func (e *Emitter) Listeners(event string) []*domain.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()

	regs := e.events[event]
	out := make([]*domain.Handle, len(regs))
	for i, r := range regs {
		out[i] = r.handle
	}
	return out
}

// ListenerCount returns the number of registrations for event.
func (e *Emitter) ListenerCount(event string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.events[event])
}

// EventNames returns every event with at least one listener.
func (e *Emitter) EventNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]string, 0, len(e.events))
	for name := range e.events {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Emit calls every listener attached for event with the emitter as receiver.
// Single-shot listeners are detached before any listener runs.
func (e *Emitter) Emit(event string, args ...any) bool {
	e.mu.Lock()
	regs := e.events[event]
	if len(regs) == 0 {
		e.mu.Unlock()
		return false
	}
	snapshot := slices.Clone(regs)
	kept := slices.DeleteFunc(slices.Clone(regs), func(r registration) bool { return r.once })
	e.setLocked(event, kept)
	e.mu.Unlock()

	for _, r := range snapshot {
		r.handle.Call(e, args...)
	}
	return true
}

func (e *Emitter) setLocked(event string, regs []registration) {
	if len(regs) == 0 {
		delete(e.events, event)
		return
	}
	e.events[event] = regs
}
