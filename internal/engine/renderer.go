// Package engine holds the contracts between the game simulation and the
// outside world: drawing, images and sprite sheets, audio, the new-game UI
// control and asset loading. The simulation only talks to these types; the
// terminal platform provides the concrete implementations.
package engine

import "github.com/curry-roux/walk-the-dog/internal/core"

// Renderer is the drawing surface the simulation draws into.
// All coordinates are world pixels.
type Renderer interface {
	// Clear erases the given area.
	Clear(r core.Rect)
	// DrawImage copies the src area of img onto dst.
	DrawImage(img *ImageAsset, src, dst core.Rect)
	// DrawRect outlines r, used for debug bounding boxes.
	DrawRect(r core.Rect)
}

// ImageAsset is a loaded image. Besides its pixel size it carries the
// terminal appearance used by ScreenRenderer: a solid glyph or a repeating
// texture, and a color.
type ImageAsset struct {
	Name   string
	Width  int
	Height int
	Color  core.Color

	Glyph       rune   // Solid fill glyph; 0 means transparent unless Texture is set
	Texture     []rune // Repeating pattern sampled in image space
	TextureCell int    // Image pixels per texture glyph
}

// GlyphAt returns the glyph covering image-space pixel (u, v).
// A zero rune means the pixel is transparent.
func (a *ImageAsset) GlyphAt(u, v int) rune {
	if len(a.Texture) == 0 {
		return a.Glyph
	}
	cell := a.TextureCell
	if cell <= 0 {
		cell = 1
	}
	// Offset each texture row so the pattern does not form columns.
	idx := floorDiv(u, cell) + floorDiv(v, cell)*7
	n := len(a.Texture)
	g := a.Texture[((idx%n)+n)%n]
	if g == ' ' {
		return 0
	}
	return g
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
