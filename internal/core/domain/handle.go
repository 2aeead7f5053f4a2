package domain

// ListenerFunc is an event callback. The receiver an emitter or a binding
// chose for the call is passed explicitly as this.
type ListenerFunc func(this any, args ...any)

// Handle is the registration identity of a listener.
// Emitters compare handles by pointer, so rebinding a listener produces a new
// Handle rather than mutating an existing one.
type Handle struct {
	fn ListenerFunc
}

// NewHandle wraps fn in a fresh handle. It returns nil when fn is nil.
func NewHandle(fn ListenerFunc) *Handle {
	if fn == nil {
		return nil
	}
	return &Handle{fn: fn}
}

// Call invokes the listener with the given receiver and arguments.
func (h *Handle) Call(this any, args ...any) {
	h.fn(this, args...)
}

// Bind returns a new handle whose receiver is fixed to this.
// The receiver supplied at call time is discarded.
func (h *Handle) Bind(this any) *Handle {
	fn := h.fn
	return &Handle{fn: func(_ any, args ...any) {
		fn(this, args...)
	}}
}

// BindLeading returns a new handle with a fixed receiver and a fixed first argument.
func (h *Handle) BindLeading(this, first any) *Handle {
	fn := h.fn
	return &Handle{fn: func(_ any, args ...any) {
		fn(this, append([]any{first}, args...)...)
	}}
}
