package wizard

import "sync"

// DialogGate publishes the open/closed state of the booking dialog so any
// call site can request "open the booking flow" without threading references
// around. Subscribers are notified on every state change.
type DialogGate struct {
	mu        sync.Mutex
	open      bool
	observers []func(open bool)
}

// Dialog is the process-wide gate.
var Dialog = &DialogGate{}

// Open marks the dialog open.
func (g *DialogGate) Open() { g.set(true) }

// Close marks the dialog closed. The wizard calls this on flow completion.
func (g *DialogGate) Close() { g.set(false) }

// IsOpen returns the current state.
func (g *DialogGate) IsOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.open
}

// Subscribe registers an observer for state changes.
func (g *DialogGate) Subscribe(fn func(open bool)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.observers = append(g.observers, fn)
}

func (g *DialogGate) set(open bool) {
	g.mu.Lock()
	if g.open == open {
		g.mu.Unlock()
		return
	}
	g.open = open
	observers := make([]func(bool), len(g.observers))
	copy(observers, g.observers)
	g.mu.Unlock()

	for _, fn := range observers {
		fn(open)
	}
}
