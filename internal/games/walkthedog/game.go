package walkthedog

import (
	"math/rand"
	"time"

	"github.com/curry-roux/walk-the-dog/internal/config"
	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
	"github.com/curry-roux/walk-the-dog/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "walkthedog"

func init() {
	registry.Register(ID, func() registry.Game { return NewGame() })
}

// configPath stores the custom config path set via CLI
var configPath string

// debugOverride forces bounding box drawing when set via CLI
var debugOverride bool

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDebug forces bounding box drawing regardless of the config file.
func SetDebug(on bool) {
	debugOverride = on
}

// Game adapts WalkTheDog to the registry.Game interface.
type Game struct {
	cfg  config.WalkConfig
	game *WalkTheDog
}

// NewGame creates an uninitialized game using the default configuration.
func NewGame() *Game {
	return &Game{cfg: config.DefaultWalkConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Walk the Dog"
}

// Init loads the configuration and initializes the game.
// A zero seed picks one from the clock.
func (g *Game) Init(rc core.RuntimeConfig, env engine.Env) error {
	if g.game != nil {
		return g.game.Initialize(env)
	}

	cfg, err := config.LoadWalk(configPath)
	if err != nil {
		return err
	}
	if debugOverride {
		cfg.Debug = true
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := New(cfg, rand.New(rand.NewSource(seed)))
	if err := game.Initialize(env); err != nil {
		return err
	}
	g.cfg = cfg
	g.game = game
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(keys core.KeyState) core.StepResult {
	if g.game != nil {
		g.game.Update(keys)
	}
	return core.StepResult{State: g.State()}
}

// Render draws the current frame.
func (g *Game) Render(r engine.Renderer) {
	if g.game == nil {
		r.Clear(g.Viewport())
		return
	}
	g.game.Draw(r)
}

// State returns the distance travelled and the current phase.
func (g *Game) State() core.GameState {
	if g.game == nil {
		return core.GameState{Phase: PhaseLoading.String()}
	}
	phase := g.game.Phase()
	st := core.GameState{
		Phase:    phase.String(),
		GameOver: phase == PhaseGameOver,
	}
	if w := g.game.Walk(); w != nil {
		st.Score = w.Distance()
	}
	return st
}

// Viewport returns the world area the game draws into.
func (g *Game) Viewport() core.Rect {
	return core.NewRect(0, 0, g.cfg.Viewport.Width, g.cfg.Viewport.Height)
}

// Game returns the underlying machine, or nil before Init.
func (g *Game) Game() *WalkTheDog {
	return g.game
}
