package orderservice

import "sync"

// LoadGuard makes the persisted-store load an at-most-once event per
// process run. The composition root owns a single guard and hands it to
// every OrderService it constructs, so rebuilding the service never
// replays the store into an already-populated registry. Tests create a
// fresh guard per case to get an isolated load.
type LoadGuard struct {
	once sync.Once
}

// NewLoadGuard creates an unused load guard.
func NewLoadGuard() *LoadGuard {
	return &LoadGuard{}
}

// do runs fn the first time it is called on this guard and never again.
func (g *LoadGuard) do(fn func()) {
	g.once.Do(fn)
}
