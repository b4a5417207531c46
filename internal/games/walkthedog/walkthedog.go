// Package walkthedog implements Walk the Dog, an endless runner: Red Hat Boy
// runs through a scrolling world of stones and platforms, sliding under and
// jumping onto them until he is knocked out.
package walkthedog

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/curry-roux/walk-the-dog/internal/config"
	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
	"github.com/curry-roux/walk-the-dog/internal/games/walkthedog/rhb"
)

// ErrAlreadyInitialized is returned by Initialize on a running game.
var ErrAlreadyInitialized = errors.New("walkthedog: game is already initialized")

// WalkTheDog is the top-level game machine: ready, walking and game over.
type WalkTheDog struct {
	cfg     config.WalkConfig
	rng     *rand.Rand
	machine machineState // nil until initialized
}

// New creates an uninitialized game. rng drives segment selection.
func New(cfg config.WalkConfig, rng *rand.Rand) *WalkTheDog {
	return &WalkTheDog{cfg: cfg, rng: rng}
}

// Tuning converts the physics configuration into character constants.
func Tuning(cfg config.WalkConfig) rhb.Tuning {
	return rhb.Tuning{
		Height:           cfg.Physics.Height,
		Floor:            cfg.Physics.Floor,
		Gravity:          cfg.Physics.Gravity,
		TerminalVelocity: cfg.Physics.TerminalVelocity,
		StartingPoint:    cfg.Physics.StartingPoint,
		RunningSpeed:     cfg.Physics.RunningSpeed,
		JumpSpeed:        cfg.Physics.JumpSpeed,
		IdleFrames:       cfg.Frames.Idle,
		RunningFrames:    cfg.Frames.Running,
		SlidingFrames:    cfg.Frames.Sliding,
		JumpingFrames:    cfg.Frames.Jumping,
		FallingFrames:    cfg.Frames.Falling,
	}
}

// Initialize loads every asset, starts the background music and puts the
// game in the ready phase. Any asset failure aborts initialization and
// leaves the game uninitialized. Calling it again returns
// ErrAlreadyInitialized.
func (g *WalkTheDog) Initialize(env engine.Env) error {
	if g.machine != nil {
		return ErrAlreadyInitialized
	}
	if env.Assets == nil || env.UI == nil {
		return fmt.Errorf("walkthedog: environment needs an asset loader and a UI")
	}
	audio := env.Audio
	if audio == nil || g.cfg.Audio.Mute {
		audio = engine.NopAudio{}
	}
	a := g.cfg.Assets
	tuning := Tuning(g.cfg)

	sheet, err := env.Assets.LoadSheet(a.CharacterSheet)
	if err != nil {
		return fmt.Errorf("walkthedog: %w", err)
	}
	if err := sheet.Require(FrameNames(tuning)...); err != nil {
		return fmt.Errorf("walkthedog: %s: %w", a.CharacterSheet, err)
	}
	rhbImage, err := env.Assets.LoadImage(a.CharacterImage)
	if err != nil {
		return fmt.Errorf("walkthedog: %w", err)
	}
	background, err := env.Assets.LoadImage(a.Background)
	if err != nil {
		return fmt.Errorf("walkthedog: %w", err)
	}
	stone, err := env.Assets.LoadImage(a.Stone)
	if err != nil {
		return fmt.Errorf("walkthedog: %w", err)
	}

	tileSheet, err := env.Assets.LoadSheet(a.TileSheet)
	if err != nil {
		return fmt.Errorf("walkthedog: %w", err)
	}
	if err := tileSheet.Require(g.cfg.Segments.Platform.Sprites...); err != nil {
		return fmt.Errorf("walkthedog: %s: %w", a.TileSheet, err)
	}
	tileImage, err := env.Assets.LoadImage(a.TileImage)
	if err != nil {
		return fmt.Errorf("walkthedog: %w", err)
	}
	tiles := engine.NewSpriteSheet(tileSheet, tileImage)

	jumpSound, err := g.loadSound(env.Assets, a.JumpSound)
	if err != nil {
		return err
	}
	music, err := g.loadSound(env.Assets, a.Music)
	if err != nil {
		return err
	}

	segments, err := NewSegmentGenerator(g.rng, g.cfg.Segments, stone, tiles)
	if err != nil {
		return err
	}

	if err := audio.PlayLooping(music); err != nil {
		log.Warn("cannot play background music", "sound", music.Name, "err", err)
	}

	boy := NewRedHatBoy(sheet, rhbImage, tuning, g.cfg.Character.BoxInset, audio, jumpSound)
	walk := NewWalk(boy, background, segments, WalkOptions{
		TimelineMinimum: g.cfg.Segments.TimelineMinimum,
		ObstacleBuffer:  g.cfg.Segments.ObstacleBuffer,
		Debug:           g.cfg.Debug,
	})
	g.machine = ready{w: walk, ui: env.UI}
	log.Debug("game initialized", "timeline", walk.Timeline())
	return nil
}

func (g *WalkTheDog) loadSound(assets engine.AssetLoader, name string) (engine.Sound, error) {
	s, err := assets.LoadSound(name)
	if err != nil {
		return engine.Sound{}, fmt.Errorf("walkthedog: %w", err)
	}
	s.Volume *= g.cfg.Audio.Volume
	return s, nil
}

// Update advances the game by one tick. It does nothing before
// initialization.
func (g *WalkTheDog) Update(keys core.KeyState) {
	if g.machine == nil {
		return
	}
	g.machine = g.machine.update(keys)
}

// Draw clears the viewport and draws the current level in every phase.
func (g *WalkTheDog) Draw(r engine.Renderer) {
	r.Clear(g.Viewport())
	if g.machine != nil {
		g.machine.walk().Draw(r)
	}
}

// Viewport is the world area drawn each frame.
func (g *WalkTheDog) Viewport() core.Rect {
	return core.NewRect(0, 0, g.cfg.Viewport.Width, g.cfg.Viewport.Height)
}

// Phase returns the current top-level phase.
func (g *WalkTheDog) Phase() Phase {
	if g.machine == nil {
		return PhaseLoading
	}
	return g.machine.phase()
}

// Walk returns the current level, or nil before initialization.
func (g *WalkTheDog) Walk() *Walk {
	if g.machine == nil {
		return nil
	}
	return g.machine.walk()
}
