package engine

import "github.com/curry-roux/walk-the-dog/internal/core"

// DebugColor is the color used for debug outlines.
const DebugColor = core.ColorBrightRed

// ScreenRenderer rasterises a fixed-size world onto a terminal cell buffer.
// The x and y axes scale independently; a world rectangle covers every cell
// whose origin falls inside it, and at least one cell on each axis.
type ScreenRenderer struct {
	screen *core.Screen
	worldW int
	worldH int
}

// NewScreenRenderer creates a renderer mapping a worldW x worldH world onto
// screen.
func NewScreenRenderer(screen *core.Screen, worldW, worldH int) *ScreenRenderer {
	if worldW <= 0 {
		worldW = 1
	}
	if worldH <= 0 {
		worldH = 1
	}
	return &ScreenRenderer{screen: screen, worldW: worldW, worldH: worldH}
}

// Screen returns the target buffer.
func (sr *ScreenRenderer) Screen() *core.Screen {
	return sr.screen
}

// cellX maps a world x coordinate to a column.
func (sr *ScreenRenderer) cellX(x int) int {
	return floorDiv(x*sr.screen.Width(), sr.worldW)
}

// cellY maps a world y coordinate to a row.
func (sr *ScreenRenderer) cellY(y int) int {
	return floorDiv(y*sr.screen.Height(), sr.worldH)
}

// cells converts a world rectangle to the covered cell rectangle.
func (sr *ScreenRenderer) cells(r core.Rect) core.Rect {
	x0, y0 := sr.cellX(r.X), sr.cellY(r.Y)
	x1, y1 := sr.cellX(r.Right()), sr.cellY(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// worldX maps the centre of column cx back to a world x coordinate.
func (sr *ScreenRenderer) worldX(cx int) int {
	return floorDiv((2*cx+1)*sr.worldW, 2*sr.screen.Width())
}

// worldY maps the centre of row cy back to a world y coordinate.
func (sr *ScreenRenderer) worldY(cy int) int {
	return floorDiv((2*cy+1)*sr.worldH, 2*sr.screen.Height())
}

// Clear implements Renderer.
func (sr *ScreenRenderer) Clear(r core.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	sr.screen.DrawRect(sr.cells(r), core.Cell{Rune: ' '})
}

// DrawImage implements Renderer. Each covered cell samples the source image
// at the matching point; transparent glyphs leave the cell untouched.
func (sr *ScreenRenderer) DrawImage(img *ImageAsset, src, dst core.Rect) {
	if img == nil || dst.W <= 0 || dst.H <= 0 {
		return
	}
	c := sr.cells(dst)
	for cy := c.Y; cy < c.Bottom(); cy++ {
		if cy < 0 || cy >= sr.screen.Height() {
			continue
		}
		wy := core.Clamp(sr.worldY(cy), dst.Y, dst.Bottom()-1)
		v := src.Y + (wy-dst.Y)*src.H/dst.H
		for cx := c.X; cx < c.Right(); cx++ {
			if cx < 0 || cx >= sr.screen.Width() {
				continue
			}
			wx := core.Clamp(sr.worldX(cx), dst.X, dst.Right()-1)
			u := src.X + (wx-dst.X)*src.W/dst.W
			if g := img.GlyphAt(u, v); g != 0 {
				sr.screen.SetCell(cx, cy, core.Cell{Rune: g, Color: img.Color})
			}
		}
	}
}

// DrawRect implements Renderer.
func (sr *ScreenRenderer) DrawRect(r core.Rect) {
	sr.screen.DrawBox(sr.cells(r), DebugColor)
}
