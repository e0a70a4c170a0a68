// Package dispatch is a tiny synchronous event bus. Handlers are run
// in registration order and each emitted event runs to completion
// before the caller regains control, mirroring the one-event-at-a-time
// scheduling of the UI runtime this core was written for.
package dispatch

import "sync"

// Handler receives the event payload.
type Handler func(data any)

// Dispatcher routes named events to registered handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func New() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

// Register adds a handler for the named event. Handlers fire in
// registration order.
func (d *Dispatcher) Register(event string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[event] = append(d.handlers[event], h)
}

// Emit runs every handler for the event synchronously, in order.
func (d *Dispatcher) Emit(event string, data any) {
	d.mu.RLock()
	hs := make([]Handler, len(d.handlers[event]))
	copy(hs, d.handlers[event])
	d.mu.RUnlock()

	for _, h := range hs {
		h(data)
	}
}
