package engine

// Signal is a single-slot, poll-only event channel. A producer fires it at
// most once until the consumer polls it; neither side ever blocks.
type Signal struct {
	ch chan struct{}
}

// NewSignal creates an unfired signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Fire delivers the event. It reports false if an event is already pending.
func (s *Signal) Fire() bool {
	select {
	case s.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

// Poll consumes a pending event and reports whether there was one.
// Polling a nil signal always reports false.
func (s *Signal) Poll() bool {
	if s == nil {
		return false
	}
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

// UI shows and hides the "new game" control presented after a game over.
type UI interface {
	// ShowNewGameControl displays the control and returns the signal fired
	// when the player activates it.
	ShowNewGameControl() (*Signal, error)
	// HideNewGameControl removes the control.
	HideNewGameControl() error
}
