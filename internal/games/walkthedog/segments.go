package walkthedog

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/curry-roux/walk-the-dog/internal/config"
	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
)

// SegmentGenerator builds obstacle segments from the configured layouts.
type SegmentGenerator struct {
	rng      *rand.Rand
	layouts  []config.Layout
	starting config.Layout
	sprites  []string
	boxes    []core.Rect
	stone    *engine.ImageAsset
	tiles    *engine.SpriteSheet
}

// NewSegmentGenerator creates a generator. Layouts are picked uniformly
// with rng.
func NewSegmentGenerator(rng *rand.Rand, cfg config.WalkSegments, stone *engine.ImageAsset, tiles *engine.SpriteSheet) (*SegmentGenerator, error) {
	if len(cfg.Layouts) == 0 {
		return nil, fmt.Errorf("walkthedog: no segment layouts configured")
	}
	starting, ok := cfg.Layout(cfg.Starting)
	if !ok {
		return nil, fmt.Errorf("walkthedog: unknown starting layout %q", cfg.Starting)
	}

	boxes := make([]core.Rect, len(cfg.Platform.Boxes))
	for i, b := range cfg.Platform.Boxes {
		boxes[i] = core.NewRect(b.X, b.Y, b.Width, b.Height)
	}

	return &SegmentGenerator{
		rng:      rng,
		layouts:  cfg.Layouts,
		starting: starting,
		sprites:  cfg.Platform.Sprites,
		boxes:    boxes,
		stone:    stone,
		tiles:    tiles,
	}, nil
}

// Starting builds the layout every new game begins with, at offset 0.
func (g *SegmentGenerator) Starting() []Obstacle {
	return g.Build(g.starting, 0)
}

// Next builds a randomly chosen layout at offset.
func (g *SegmentGenerator) Next(offset int) []Obstacle {
	layout := g.layouts[g.rng.Intn(len(g.layouts))]
	log.Debug("generating segment", "layout", layout.Name, "offset", offset)
	return g.Build(layout, offset)
}

// Build places every obstacle of layout relative to offset.
func (g *SegmentGenerator) Build(layout config.Layout, offset int) []Obstacle {
	obstacles := make([]Obstacle, 0, len(layout.Obstacles))
	for _, o := range layout.Obstacles {
		pos := core.Point{X: offset + o.X, Y: o.Y}
		switch o.Kind {
		case config.KindStone:
			obstacles = append(obstacles, NewBarrier(engine.NewImage(g.stone, pos)))
		case config.KindPlatform:
			obstacles = append(obstacles, NewPlatform(g.tiles, pos, g.sprites, g.boxes))
		}
	}
	return obstacles
}

// Sprites returns the tile names platforms are drawn with.
func (g *SegmentGenerator) Sprites() []string {
	return g.sprites
}
