package tui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
	"github.com/curry-roux/walk-the-dog/internal/registry"
)

// chromeLines is the number of terminal rows used by the HUD and help line.
const chromeLines = 2

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	renderer  *engine.ScreenRenderer
	overlay   *Overlay
	config    core.RuntimeConfig
	keys      core.KeyState
	keyMap    KeyMap
	help      help.Model
	gameState core.GameState
	width     int
	paused    bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for an initialized game. overlay
// must be the engine.UI the game was initialized with.
func NewModel(game registry.Game, overlay *Overlay, cfg core.RuntimeConfig) Model {
	screen := core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-chromeLines, 1))
	view := game.Viewport()

	h := help.New()
	h.ShowAll = false

	return Model{
		game:      game,
		screen:    screen,
		renderer:  engine.NewScreenRenderer(screen, view.W, view.H),
		overlay:   overlay,
		config:    cfg,
		keys:      core.NewKeyState(),
		keyMap:    DefaultKeyMap(),
		help:      h,
		gameState: game.State(),
		width:     cfg.ScreenW,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Pause):
		m.paused = !m.paused
		return m, nil
	case key.Matches(msg, m.keyMap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keyMap.NewGame):
		m.overlay.Activate()
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	if k, ok := m.keyMap.GameKey(msg); ok {
		m.keys.Press(k)
	}
	return m, nil
}

// handleResize processes window resize events. The world is rescaled; the
// game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.width = msg.Width
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, core.Max(msg.Height-chromeLines, 1))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	prev := m.gameState.Phase
	result := m.game.Step(m.keys)
	m.gameState = result.State
	if m.gameState.Phase != prev {
		log.Debug("phase changed", "from", prev, "to", m.gameState.Phase)
	}

	// Clear input for next tick
	m.keys.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.renderer)
	m.overlay.Draw(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteRune('\n')
	b.WriteString(renderHUD(m.game.Title(), m.gameState, m.paused, m.width))
	b.WriteRune('\n')
	b.WriteString(helpStyle.Render(m.help.View(m.keyMap)))
	return b.String()
}

// Options configures Run.
type Options struct {
	Assets engine.AssetLoader
	Bell   io.Writer // Receives terminal bell characters; defaults to stdout
	Mute   bool
}

// Run initializes the game and starts the Bubble Tea program.
// Initialization errors are returned before the terminal is taken over.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	overlay := NewOverlay()

	var audio engine.Audio = engine.NopAudio{}
	if !opts.Mute {
		bell := opts.Bell
		if bell == nil {
			bell = os.Stdout
		}
		audio = NewBellAudio(bell)
	}

	env := engine.Env{Assets: opts.Assets, Audio: audio, UI: overlay}
	if err := game.Init(cfg, env); err != nil {
		return err
	}

	model := NewModel(game, overlay, cfg)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
