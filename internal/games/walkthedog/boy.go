package walkthedog

import (
	"fmt"

	"github.com/curry-roux/walk-the-dog/internal/config"
	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
	"github.com/curry-roux/walk-the-dog/internal/games/walkthedog/rhb"
)

// RedHatBoy is the player character: a phase state machine plus the sprite
// sheet that animates it.
type RedHatBoy struct {
	state rhb.State
	sheet engine.Sheet
	image *engine.ImageAsset
	inset config.Inset
}

// NewRedHatBoy creates an idle character.
func NewRedHatBoy(sheet engine.Sheet, image *engine.ImageAsset, tuning rhb.Tuning, inset config.Inset, audio engine.Audio, jumpSound engine.Sound) *RedHatBoy {
	return &RedHatBoy{
		state: rhb.NewIdle(tuning, audio, jumpSound),
		sheet: sheet,
		image: image,
		inset: inset,
	}
}

// Reset returns a fresh idle character sharing this one's sheet, image and
// audio.
func (b *RedHatBoy) Reset() *RedHatBoy {
	ctx := b.state.Context()
	return NewRedHatBoy(b.sheet, b.image, ctx.Tuning(), b.inset, ctx.Audio(), ctx.JumpSound())
}

// FrameName composes the sprite name for the current phase and frame.
// One sprite frame is shown for every three ticks.
func (b *RedHatBoy) FrameName() string {
	return frameName(b.state.Label(), b.state.Context().Frame)
}

func frameName(label string, frame int) string {
	return fmt.Sprintf("%s (%d).png", label, frame/3+1)
}

// FrameNames lists every sprite name the character can request.
func FrameNames(t rhb.Tuning) []string {
	phases := []struct {
		label string
		count int
	}{
		{rhb.IdleLabel, t.IdleFrames},
		{rhb.RunLabel, t.RunningFrames},
		{rhb.SlideLabel, t.SlidingFrames},
		{rhb.JumpLabel, t.JumpingFrames},
		{rhb.FallLabel, t.FallingFrames},
	}
	var names []string
	for _, p := range phases {
		for f := 0; f <= p.count; f += 3 {
			names = append(names, frameName(p.label, f))
		}
	}
	return names
}

// currentSprite returns the sheet cell for the current frame.
// A missing cell is a broken asset and panics.
func (b *RedHatBoy) currentSprite() engine.Cell {
	name := b.FrameName()
	cell, ok := b.sheet.Cell(name)
	if !ok {
		panic(fmt.Sprintf("walkthedog: sprite %q not found in character sheet", name))
	}
	return cell
}

// DestinationBox is where the current sprite is drawn.
func (b *RedHatBoy) DestinationBox() core.Rect {
	sprite := b.currentSprite()
	pos := b.state.Context().Position
	return core.NewRect(
		pos.X+sprite.SpriteSourceSize.X,
		pos.Y+sprite.SpriteSourceSize.Y,
		sprite.Frame.W,
		sprite.Frame.H,
	)
}

// BoundingBox is the collision box, the destination box shrunk by the
// configured inset.
func (b *RedHatBoy) BoundingBox() core.Rect {
	d := b.DestinationBox()
	return core.NewRect(
		d.X+b.inset.X,
		d.Y+b.inset.Y,
		d.W-b.inset.Width,
		d.H-b.inset.Height,
	)
}

// Draw renders the current sprite.
func (b *RedHatBoy) Draw(r engine.Renderer) {
	sprite := b.currentSprite()
	r.DrawImage(b.image, sprite.Frame.Rect(), b.DestinationBox())
}

// DrawRect outlines the bounding box.
func (b *RedHatBoy) DrawRect(r engine.Renderer) {
	r.DrawRect(b.BoundingBox())
}

// State returns the current phase value.
func (b *RedHatBoy) State() rhb.State { return b.state }

// Phase returns the current phase.
func (b *RedHatBoy) Phase() rhb.Phase { return b.state.Phase() }

// KnockedOut reports whether the character reached the terminal phase.
func (b *RedHatBoy) KnockedOut() bool { return rhb.IsKnockedOut(b.state) }

// PosY returns the vertical position.
func (b *RedHatBoy) PosY() int { return b.state.Context().Position.Y }

// VelocityY returns the vertical velocity.
func (b *RedHatBoy) VelocityY() int { return b.state.Context().Velocity.Y }

// WalkingSpeed returns the horizontal velocity.
func (b *RedHatBoy) WalkingSpeed() int { return b.state.Context().Velocity.X }

func (b *RedHatBoy) transition(e rhb.Event) {
	b.state = rhb.Transition(b.state, e)
}

// Update advances one tick.
func (b *RedHatBoy) Update() { b.transition(rhb.Update{}) }

// RunRight starts running.
func (b *RedHatBoy) RunRight() { b.transition(rhb.Run{}) }

// Slide starts a slide.
func (b *RedHatBoy) Slide() { b.transition(rhb.Slide{}) }

// Jump takes off.
func (b *RedHatBoy) Jump() { b.transition(rhb.Jump{}) }

// LandOn puts the character's feet at y.
func (b *RedHatBoy) LandOn(y int) { b.transition(rhb.Land{Y: y}) }

// KnockOut reports a fatal collision.
func (b *RedHatBoy) KnockOut() { b.transition(rhb.KnockOut{}) }
