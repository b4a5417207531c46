package rhb

// Event drives a transition between phases.
type Event interface {
	isEvent()
}

// Run starts running from Idle.
type Run struct{}

// Slide starts a slide while running.
type Slide struct{}

// Jump takes off while running.
type Jump struct{}

// Update advances one tick.
type Update struct{}

// KnockOut reports a fatal collision.
type KnockOut struct{}

// Land puts the character's feet at Y.
type Land struct{ Y int }

func (Run) isEvent()      {}
func (Slide) isEvent()    {}
func (Jump) isEvent()     {}
func (Update) isEvent()   {}
func (KnockOut) isEvent() {}
func (Land) isEvent()     {}

// Transition applies e to s. Events a phase does not accept leave the state
// unchanged.
func Transition(s State, e Event) State {
	switch st := s.(type) {
	case Idle:
		switch e.(type) {
		case Run:
			return st.Run()
		case Update:
			return st.Update()
		}
	case Running:
		switch ev := e.(type) {
		case Slide:
			return st.Slide()
		case Jump:
			return st.Jump()
		case KnockOut:
			return st.KnockOut()
		case Land:
			return st.LandOn(ev.Y)
		case Update:
			return st.Update()
		}
	case Sliding:
		switch ev := e.(type) {
		case KnockOut:
			return st.KnockOut()
		case Land:
			return st.LandOn(ev.Y)
		case Update:
			return st.Update()
		}
	case Jumping:
		switch ev := e.(type) {
		case KnockOut:
			return st.KnockOut()
		case Land:
			return st.LandOn(ev.Y)
		case Update:
			return st.Update()
		}
	case Falling:
		if _, ok := e.(Update); ok {
			return st.Update()
		}
	}
	return s
}

// IsKnockedOut reports whether s is the terminal phase.
func IsKnockedOut(s State) bool {
	_, ok := s.(KnockedOut)
	return ok
}
