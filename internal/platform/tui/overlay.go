package tui

import (
	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
)

// Overlay is the terminal rendition of the new game control: a centered box
// drawn over the frozen level. It implements engine.UI.
type Overlay struct {
	visible bool
	signal  *engine.Signal
}

// NewOverlay creates a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// ShowNewGameControl implements engine.UI.
func (o *Overlay) ShowNewGameControl() (*engine.Signal, error) {
	o.visible = true
	o.signal = engine.NewSignal()
	return o.signal, nil
}

// HideNewGameControl implements engine.UI.
func (o *Overlay) HideNewGameControl() error {
	o.visible = false
	o.signal = nil
	return nil
}

// Visible reports whether the control is shown.
func (o *Overlay) Visible() bool {
	return o.visible
}

// Activate presses the control. It reports whether a press was delivered.
func (o *Overlay) Activate() bool {
	if !o.visible || o.signal == nil {
		return false
	}
	return o.signal.Fire()
}

// Draw renders the control onto dst when visible.
func (o *Overlay) Draw(dst *core.Screen) {
	if !o.visible {
		return
	}
	drawCenteredMessage(dst, "NEW GAME", "Press Enter to play again")
}

// drawCenteredMessage draws a bordered message box in the middle of dst.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorBrightYellow)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	for i, r := range title {
		dst.SetCell(titleX+i, boxY+1, core.Cell{Rune: r, Color: core.ColorBrightWhite})
	}

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
