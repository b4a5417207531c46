package rhb

import (
	"github.com/charmbracelet/log"

	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
)

// Phase names one of the character's locomotion modes.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseSliding
	PhaseJumping
	PhaseFalling
	PhaseKnockedOut
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseSliding:
		return "sliding"
	case PhaseJumping:
		return "jumping"
	case PhaseFalling:
		return "falling"
	case PhaseKnockedOut:
		return "knocked out"
	default:
		return "unknown"
	}
}

// Sprite sheet animation labels.
const (
	IdleLabel  = "Idle"
	RunLabel   = "Run"
	SlideLabel = "Slide"
	JumpLabel  = "Jump"
	FallLabel  = "Dead"
)

// State is implemented by the six phase types: Idle, Running, Sliding,
// Jumping, Falling and KnockedOut.
type State interface {
	Phase() Phase
	Label() string // Animation label in the sprite sheet
	Context() Context
	isState()
}

// FrameCount returns the number of animation ticks of a phase.
func FrameCount(s State) int {
	t := s.Context().tuning
	switch s.Phase() {
	case PhaseIdle:
		return t.IdleFrames
	case PhaseRunning:
		return t.RunningFrames
	case PhaseSliding:
		return t.SlidingFrames
	case PhaseJumping:
		return t.JumpingFrames
	default:
		return t.FallingFrames
	}
}

// Idle is the starting phase: standing still, breathing.
type Idle struct{ ctx Context }

// Running moves at running speed.
type Running struct{ ctx Context }

// Sliding runs crouched for one slide animation.
type Sliding struct{ ctx Context }

// Jumping is airborne after take-off.
type Jumping struct{ ctx Context }

// Falling plays the knock-out animation.
type Falling struct{ ctx Context }

// KnockedOut is terminal.
type KnockedOut struct{ ctx Context }

// NewIdle creates a character standing at the starting point on the floor.
func NewIdle(t Tuning, audio engine.Audio, jumpSound engine.Sound) Idle {
	return Idle{ctx: Context{
		Position:  core.Point{X: t.StartingPoint, Y: t.Floor},
		audio:     audio,
		jumpSound: jumpSound,
		tuning:    t,
	}}
}

func (Idle) isState()       {}
func (Running) isState()    {}
func (Sliding) isState()    {}
func (Jumping) isState()    {}
func (Falling) isState()    {}
func (KnockedOut) isState() {}

func (Idle) Phase() Phase       { return PhaseIdle }
func (Running) Phase() Phase    { return PhaseRunning }
func (Sliding) Phase() Phase    { return PhaseSliding }
func (Jumping) Phase() Phase    { return PhaseJumping }
func (Falling) Phase() Phase    { return PhaseFalling }
func (KnockedOut) Phase() Phase { return PhaseKnockedOut }

func (Idle) Label() string       { return IdleLabel }
func (Running) Label() string    { return RunLabel }
func (Sliding) Label() string    { return SlideLabel }
func (Jumping) Label() string    { return JumpLabel }
func (Falling) Label() string    { return FallLabel }
func (KnockedOut) Label() string { return FallLabel }

func (s Idle) Context() Context       { return s.ctx }
func (s Running) Context() Context    { return s.ctx }
func (s Sliding) Context() Context    { return s.ctx }
func (s Jumping) Context() Context    { return s.ctx }
func (s Falling) Context() Context    { return s.ctx }
func (s KnockedOut) Context() Context { return s.ctx }

// Run starts running.
func (s Idle) Run() Running {
	return Running{ctx: s.ctx.resetFrame().runRight()}
}

// Update advances the idle animation.
func (s Idle) Update() Idle {
	s.ctx = s.ctx.update(s.ctx.tuning.IdleFrames)
	return s
}

// Update advances the run animation.
func (s Running) Update() Running {
	s.ctx = s.ctx.update(s.ctx.tuning.RunningFrames)
	return s
}

// Slide starts a slide.
func (s Running) Slide() Sliding {
	return Sliding{ctx: s.ctx.resetFrame()}
}

// Jump takes off and plays the jump sound.
func (s Running) Jump() Jumping {
	return Jumping{ctx: s.ctx.setVerticalVelocity(s.ctx.tuning.JumpSpeed).resetFrame().playJumpSound()}
}

// KnockOut stops the character and starts falling.
func (s Running) KnockOut() Falling {
	return Falling{ctx: s.ctx.resetFrame().stop()}
}

// LandOn keeps running with the feet at y.
func (s Running) LandOn(y int) Running {
	return Running{ctx: s.ctx.setOn(y)}
}

// Update advances the slide; the slide ends after one full animation.
func (s Sliding) Update() State {
	s.ctx = s.ctx.update(s.ctx.tuning.SlidingFrames)
	if s.ctx.Frame >= s.ctx.tuning.SlidingFrames {
		return s.Stand()
	}
	return s
}

// Stand returns to running.
func (s Sliding) Stand() Running {
	return Running{ctx: s.ctx.resetFrame()}
}

// KnockOut stops the character and starts falling.
func (s Sliding) KnockOut() Falling {
	return Falling{ctx: s.ctx.resetFrame().stop()}
}

// LandOn keeps sliding with the feet at y.
func (s Sliding) LandOn(y int) Sliding {
	return Sliding{ctx: s.ctx.setOn(y)}
}

// Update integrates the jump arc and lands on the floor once reached.
func (s Jumping) Update() State {
	s.ctx = s.ctx.update(s.ctx.tuning.JumpingFrames)
	if s.ctx.Position.Y >= s.ctx.tuning.Floor {
		return s.LandOn(s.ctx.tuning.Height)
	}
	return s
}

// LandOn ends the jump with the feet at y.
func (s Jumping) LandOn(y int) Running {
	log.Debug("landed", "y", y)
	return Running{ctx: s.ctx.resetFrame().setOn(y)}
}

// KnockOut stops the character and starts falling.
func (s Jumping) KnockOut() Falling {
	return Falling{ctx: s.ctx.resetFrame().stop()}
}

// Update advances the fall; the character is knocked out after one full
// animation.
func (s Falling) Update() State {
	s.ctx = s.ctx.update(s.ctx.tuning.FallingFrames)
	if s.ctx.Frame >= s.ctx.tuning.FallingFrames {
		return KnockedOut{ctx: s.ctx}
	}
	return s
}
