package app

import "sync"

// busyGuard lets one gateway call run at a time per session. A second
// trigger is refused with ErrBusy; nothing is queued or cancelled.
type busyGuard struct {
	mu sync.Mutex
}

func (g *busyGuard) run(fn func() error) error {
	if !g.mu.TryLock() {
		return ErrBusy
	}
	defer g.mu.Unlock()
	return fn()
}

// Busy reports whether a call is in flight.
func (g *busyGuard) Busy() bool {
	if g.mu.TryLock() {
		g.mu.Unlock()
		return false
	}
	return true
}
