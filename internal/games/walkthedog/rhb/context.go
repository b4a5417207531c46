// Package rhb implements the Red Hat Boy character: a closed set of phase
// types sharing one physics context, and the transition function between
// them.
//
// Each phase is an immutable value. A transition consumes a phase value and
// returns a new one carrying the updated context; nothing is mutated in
// place, so two phases can never share a context.
package rhb

import (
	"github.com/charmbracelet/log"

	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
)

// Tuning holds the physics and animation constants of the character.
type Tuning struct {
	Height           int // World height; landing on it puts the character on the floor
	Floor            int // Lowest y the character's top-left may reach
	Gravity          int // Added to velocity.y every tick
	TerminalVelocity int // Gravity is not applied at or above this speed
	StartingPoint    int // Initial x
	RunningSpeed     int // velocity.x while running
	JumpSpeed        int // velocity.y at take-off (negative is up)

	IdleFrames    int
	RunningFrames int
	SlidingFrames int
	JumpingFrames int
	FallingFrames int
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		Height:           600,
		Floor:            479,
		Gravity:          1,
		TerminalVelocity: 20,
		StartingPoint:    -20,
		RunningSpeed:     4,
		JumpSpeed:        -25,
		IdleFrames:       29,
		RunningFrames:    23,
		SlidingFrames:    14,
		JumpingFrames:    35,
		FallingFrames:    29,
	}
}

// PlayerHeight is the distance between the floor and the bottom of the world.
func (t Tuning) PlayerHeight() int {
	return t.Height - t.Floor
}

// Context is the physics and animation payload threaded through every phase.
type Context struct {
	Frame    int        // Animation tick counter, 0..frame count
	Position core.Point // Top-left of the sprite's untrimmed frame
	Velocity core.Point

	audio     engine.Audio
	jumpSound engine.Sound
	tuning    Tuning
}

// Tuning returns the constants the context was built with.
func (c Context) Tuning() Tuning {
	return c.tuning
}

// Audio returns the audio handle used for the jump sound.
func (c Context) Audio() engine.Audio {
	return c.audio
}

// JumpSound returns the sound played on take-off.
func (c Context) JumpSound() engine.Sound {
	return c.jumpSound
}

// update integrates one tick of gravity and animation.
// The x position is not integrated: the world scrolls past the character.
func (c Context) update(frameCount int) Context {
	if c.Velocity.Y < c.tuning.TerminalVelocity {
		c.Velocity.Y += c.tuning.Gravity
	}

	if c.Frame < frameCount {
		c.Frame++
	} else {
		c.Frame = 0
	}

	c.Position.Y += c.Velocity.Y
	if c.Position.Y > c.tuning.Floor {
		c.Position.Y = c.tuning.Floor
	}
	return c
}

func (c Context) resetFrame() Context {
	c.Frame = 0
	return c
}

func (c Context) setVerticalVelocity(y int) Context {
	c.Velocity.Y = y
	return c
}

func (c Context) runRight() Context {
	c.Velocity.X = c.tuning.RunningSpeed
	return c
}

func (c Context) stop() Context {
	c.Velocity.X = 0
	return c
}

// setOn places the character's feet at y.
func (c Context) setOn(y int) Context {
	c.Position.Y = y - c.tuning.PlayerHeight()
	return c
}

func (c Context) playJumpSound() Context {
	if c.audio == nil {
		return c
	}
	if err := c.audio.Play(c.jumpSound); err != nil {
		log.Warn("cannot play jump sound", "sound", c.jumpSound.Name, "err", err)
	}
	return c
}
