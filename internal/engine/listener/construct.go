package listener

import (
	"slices"
	"sync"

	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
	"go.trai.ch/handler/internal/engine/construct"
)

var _ construct.Construct = (*Construct)(nil)

// Options configures a listener construct.
//
// The defaults apply only to blocks that leave the matching option Unset.
type Options struct {
	Emitter              ports.Emitter
	UseOnceByDefault     bool
	BindThis             bool
	BindEmitterParameter bool
	// Inner receives blocks once their listener is attached.
	// A new construct.Base is used when nil.
	Inner construct.Construct
}

// Construct attaches listener blocks to an emitter on load and detaches them
// on unload, then forwards to the wrapped construct.
type Construct struct {
	mu      sync.Mutex
	emitter ports.Emitter
	inner   construct.Construct

	useOnceByDefault     bool
	bindThis             bool
	bindEmitterParameter bool
}

// New creates a construct for e with all defaults off.
func New(e ports.Emitter) (*Construct, error) {
	return NewWithOptions(Options{Emitter: e})
}

// NewWithOptions creates a construct from opts.
func NewWithOptions(opts Options) (*Construct, error) {
	if opts.Emitter == nil {
		return nil, domain.ErrMissingEmitter
	}
	inner := opts.Inner
	if inner == nil {
		inner = construct.NewBase()
	}
	return &Construct{
		emitter:              opts.Emitter,
		inner:                inner,
		useOnceByDefault:     opts.UseOnceByDefault,
		bindThis:             opts.BindThis,
		bindEmitterParameter: opts.BindEmitterParameter,
	}, nil
}

// Emitter returns the wrapped emitter.
func (c *Construct) Emitter() ports.Emitter {
	return c.emitter
}

// Load attaches rec's listener to the emitter and caches it. Loading a block
// this construct already holds detaches its previous listener first.
// Records that are not listener blocks are not loaded.
func (c *Construct) Load(rec domain.Record) bool {
	lr, ok := rec.(record)
	if !ok || lr == nil {
		return false
	}
	b := lr.listenerBlock()
	if b == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	bindThis := b.BindThis.Resolve(c.bindThis)
	bindEmitter := b.BindEmitterParameter.Resolve(c.bindEmitterParameter)
	once := b.Once.Resolve(c.useOnceByDefault)

	b.mu.Lock()
	var prev *domain.Handle
	if b.construct == c {
		prev = b.listener
	}
	b.construct = c
	b.emitter = c.emitter

	h := b.original
	switch {
	case bindEmitter && bindThis:
		h = h.BindLeading(rec, c.emitter)
	case bindEmitter:
		h = h.BindLeading(c.emitter, c.emitter)
	case bindThis:
		h = h.Bind(rec)
	}
	b.listener = h
	b.mu.Unlock()

	// A block loaded again without an unload replaces its attachment.
	if prev != nil && slices.Contains(c.emitter.Listeners(b.Event), prev) {
		c.emitter.RemoveListener(b.Event, prev)
	}

	if once {
		c.emitter.Once(b.Event, h)
	} else {
		c.emitter.On(b.Event, h)
	}

	return c.inner.Load(rec)
}

// Unload detaches rec's listener if the emitter still holds it, clears the
// block's back-references and removes it from the cache.
func (c *Construct) Unload(rec domain.Record) bool {
	lr, ok := rec.(record)
	if !ok || lr == nil {
		return false
	}
	b := lr.listenerBlock()
	if b == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	b.mu.Lock()
	h := b.listener
	b.mu.Unlock()

	if slices.Contains(c.emitter.Listeners(b.Event), h) {
		c.emitter.RemoveListener(b.Event, h)
	}

	b.mu.Lock()
	b.emitter = nil
	b.construct = nil
	b.listener = b.original
	b.mu.Unlock()

	return c.inner.Unload(rec)
}

// Get returns the record cached at id.
func (c *Construct) Get(id any) (domain.Record, bool) {
	return c.inner.Get(id)
}

// Records returns the cached records in insertion order.
func (c *Construct) Records() []domain.Record {
	return c.inner.Records()
}

// Len returns the number of cached records.
func (c *Construct) Len() int {
	return c.inner.Len()
}
