package walkthedog

import (
	"github.com/charmbracelet/log"

	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
)

// Phase names a top-level game phase.
type Phase int

const (
	PhaseLoading Phase = iota // Not initialized yet
	PhaseReady
	PhaseWalking
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseWalking:
		return "walking"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// machineState is one of ready, walking or gameOver. update consumes the
// state and returns the next one; the old value must not be used again.
type machineState interface {
	update(keys core.KeyState) machineState
	walk() *Walk
	phase() Phase
}

// ready shows the idle character until the player starts running.
type ready struct {
	w  *Walk
	ui engine.UI
}

// walking runs the full level simulation.
type walking struct {
	w  *Walk
	ui engine.UI
}

// gameOver freezes the level until the new game control is activated.
type gameOver struct {
	w       *Walk
	ui      engine.UI
	newGame *engine.Signal
}

func (s ready) walk() *Walk    { return s.w }
func (s walking) walk() *Walk  { return s.w }
func (s gameOver) walk() *Walk { return s.w }

func (ready) phase() Phase    { return PhaseReady }
func (walking) phase() Phase  { return PhaseWalking }
func (gameOver) phase() Phase { return PhaseGameOver }

func (s ready) update(keys core.KeyState) machineState {
	s.w.boy.Update()
	if keys.IsPressed(core.KeyArrowRight) {
		return s.startRunning()
	}
	return s
}

func (s ready) startRunning() walking {
	s.w.boy.RunRight()
	log.Info("walk started")
	return walking(s)
}

func (s walking) update(keys core.KeyState) machineState {
	if s.w.Update(keys) {
		return s.endGame()
	}
	return s
}

func (s walking) endGame() gameOver {
	log.Info("game over", "distance", s.w.Distance())
	signal, err := s.ui.ShowNewGameControl()
	if err != nil {
		log.Error("cannot show new game control", "err", err)
	}
	return gameOver{w: s.w, ui: s.ui, newGame: signal}
}

func (s gameOver) update(core.KeyState) machineState {
	if s.newGame.Poll() {
		return s.startNewGame()
	}
	return s
}

func (s gameOver) startNewGame() ready {
	if err := s.ui.HideNewGameControl(); err != nil {
		log.Warn("cannot hide new game control", "err", err)
	}
	log.Info("new game")
	return ready{w: s.w.Reset(), ui: s.ui}
}
