package marionette

// Signal is a single-resolution completion future. Playback operations return
// one; it resolves when the underlying clip (or every member of a fan-out)
// finishes. Signals are resolved from the Stage's completion dispatch on the
// same logical thread that issued the play call; there are no goroutines and
// no locks (marionette is single-threaded, like the frame loop that drives it).
type Signal struct {
	resolved  bool
	callbacks []func()
}

func newSignal() *Signal {
	return &Signal{}
}

// resolvedSignal returns a Signal that is already resolved. Used for
// idempotent replays and not-found no-ops.
func resolvedSignal() *Signal {
	return &Signal{resolved: true}
}

// Resolved reports whether the signal has fired.
func (s *Signal) Resolved() bool {
	return s.resolved
}

// OnResolve registers fn to run when the signal resolves. If the signal is
// already resolved, fn runs immediately. Callbacks run in registration order.
func (s *Signal) OnResolve(fn func()) {
	if s.resolved {
		fn()
		return
	}
	s.callbacks = append(s.callbacks, fn)
}

// resolve fires the signal. Resolving twice is a no-op.
func (s *Signal) resolve() {
	if s.resolved {
		return
	}
	s.resolved = true
	cbs := s.callbacks
	s.callbacks = nil
	for _, fn := range cbs {
		fn()
	}
}

// Join returns a Signal that resolves once every input signal has resolved
// (all-complete join, not first-complete race). Joining zero signals yields an
// already-resolved Signal.
func Join(sigs ...*Signal) *Signal {
	remaining := 0
	for _, sig := range sigs {
		if !sig.Resolved() {
			remaining++
		}
	}
	if remaining == 0 {
		return resolvedSignal()
	}
	joined := newSignal()
	for _, sig := range sigs {
		if sig.Resolved() {
			continue
		}
		sig.OnResolve(func() {
			remaining--
			if remaining == 0 {
				joined.resolve()
			}
		})
	}
	return joined
}
