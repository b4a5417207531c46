package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/curry-roux/walk-the-dog/internal/engine"
)

// BellAudio plays sounds on a terminal: bell sounds ring the terminal bell,
// everything else is silent.
type BellAudio struct {
	out io.Writer
}

// NewBellAudio creates an audio player writing bell characters to out.
func NewBellAudio(out io.Writer) *BellAudio {
	return &BellAudio{out: out}
}

// Play implements engine.Audio.
func (a *BellAudio) Play(s engine.Sound) error {
	if !s.Bell || s.Volume <= 0 {
		return nil
	}
	_, err := io.WriteString(a.out, "\a")
	return err
}

// PlayLooping implements engine.Audio. Terminals cannot play music, so the
// request is only logged.
func (a *BellAudio) PlayLooping(s engine.Sound) error {
	log.Debug("looping sound requested", "sound", s.Name)
	return nil
}
