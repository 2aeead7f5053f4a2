package ports

import "go.trai.ch/handler/internal/core/domain"

// Emitter is an event-emitting object. Listeners are identified by handle pointer.
//
//go:generate go run go.uber.org/mock/mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type Emitter interface {
	// On attaches a persistent listener for event.
	On(event string, h *domain.Handle)
	// Once attaches a listener that is removed after its first call.
	Once(event string, h *domain.Handle)
	// RemoveListener detaches the most recently added registration of h for event.
	RemoveListener(event string, h *domain.Handle)
	// Listeners returns the handles currently attached for event, in call order.
	Listeners(event string) []*domain.Handle
	// Emit calls every listener for event and reports whether there were any.
	Emit(event string, args ...any) bool
}
