package monitor

// Guard suppresses re-entrant divergence checks.
// It is not safe for concurrent use; only the event loop touches it.
type Guard struct {
	held bool
}

// Enter acquires the guard. If it is already held, ok is false and the
// caller must return without side effects.
func (g *Guard) Enter() (release func(), ok bool) {
	if g.held {
		return nil, false
	}
	g.held = true
	return func() { g.held = false }, true
}

// Held reports whether a guarded call is in progress.
func (g *Guard) Held() bool {
	return g.held
}
