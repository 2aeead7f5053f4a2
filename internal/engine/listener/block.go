// Package listener manages event listener blocks attached to an emitter.
package listener

import (
	"sync"

	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
	"go.trai.ch/zerr"
)

// Data describes a listener block before validation.
type Data struct {
	// ID is generated when nil.
	ID       any
	Event    string
	Listener domain.ListenerFunc
	Module   string
	Type     string

	Once                 domain.TriState
	BindThis             domain.TriState
	BindEmitterParameter domain.TriState
}

// Block is a record describing one event subscription.
//
// While loaded, Emitter and Construct point at the construct holding the
// block, and Listener returns the handle actually registered on the emitter.
type Block struct {
	*domain.Block

	Event                string
	Once                 domain.TriState
	BindThis             domain.TriState
	BindEmitterParameter domain.TriState

	mu        sync.Mutex
	original  *domain.Handle
	listener  *domain.Handle
	emitter   ports.Emitter
	construct *Construct
}

// NewBlock creates a listener block for event.
func NewBlock(event string, fn domain.ListenerFunc, generate func() any) (*Block, error) {
	return NewBlockFromData(Data{Event: event, Listener: fn}, generate)
}

// NewBlockFromData creates a listener block from d.
func NewBlockFromData(d Data, generate func() any) (*Block, error) {
	if d.Event == "" {
		return nil, domain.ErrMissingEvent
	}
	if d.Listener == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingListener, "invalid listener block"), "event", d.Event)
	}

	h := domain.NewHandle(d.Listener)
	b := &Block{
		Block:                domain.NewBlockModule(d.ID, d.Module, generate),
		Event:                d.Event,
		Once:                 d.Once,
		BindThis:             d.BindThis,
		BindEmitterParameter: d.BindEmitterParameter,
		original:             h,
		listener:             h,
	}
	b.Type = d.Type
	return b, nil
}

// Listener returns the handle registered for this block. After a binding
// load it differs from the handle the block was created with.
func (b *Block) Listener() *domain.Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.listener
}

// Emitter returns the emitter the block is attached to, or nil when not loaded.
func (b *Block) Emitter() ports.Emitter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.emitter
}

// Construct returns the construct holding the block, or nil when not loaded.
func (b *Block) Construct() *Construct {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.construct
}

func (b *Block) listenerBlock() *Block {
	return b
}

// record is satisfied by *Block and by any type embedding it.
type record interface {
	domain.Record
	listenerBlock() *Block
}
