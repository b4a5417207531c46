package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/curry-roux/walk-the-dog/internal/core"
)

// SheetRect is a rectangle as written in a sprite sheet descriptor.
type SheetRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Rect converts the descriptor rectangle into a core.Rect.
func (r SheetRect) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// Cell is one frame of a sprite sheet: where it lives in the sheet image and
// where the trimmed frame sits inside the untrimmed sprite.
type Cell struct {
	Frame            SheetRect `json:"frame"`
	SpriteSourceSize SheetRect `json:"spriteSourceSize"`
}

// Sheet is a decoded sprite sheet descriptor keyed by frame name.
type Sheet struct {
	Frames map[string]Cell `json:"frames"`
}

// DecodeSheet reads a TexturePacker-style JSON descriptor.
func DecodeSheet(r io.Reader) (Sheet, error) {
	var sheet Sheet
	if err := json.NewDecoder(r).Decode(&sheet); err != nil {
		return Sheet{}, fmt.Errorf("engine: cannot decode sprite sheet: %w", err)
	}
	if len(sheet.Frames) == 0 {
		return Sheet{}, fmt.Errorf("engine: sprite sheet has no frames")
	}
	return sheet, nil
}

// Cell looks up a frame by name.
func (s Sheet) Cell(name string) (Cell, bool) {
	c, ok := s.Frames[name]
	return c, ok
}

// Require returns an error naming every frame in names that the sheet lacks.
func (s Sheet) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := s.Frames[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("engine: sprite sheet is missing frames: %s", strings.Join(missing, ", "))
}

// SpriteSheet pairs a descriptor with the image it describes.
type SpriteSheet struct {
	sheet Sheet
	image *ImageAsset
}

// NewSpriteSheet creates a sprite sheet over image.
func NewSpriteSheet(sheet Sheet, image *ImageAsset) *SpriteSheet {
	return &SpriteSheet{sheet: sheet, image: image}
}

// Cell looks up a frame by name.
func (s *SpriteSheet) Cell(name string) (Cell, bool) {
	return s.sheet.Cell(name)
}

// Sheet returns the underlying descriptor.
func (s *SpriteSheet) Sheet() Sheet {
	return s.sheet
}

// Draw copies src from the sheet image onto dst.
func (s *SpriteSheet) Draw(r Renderer, src, dst core.Rect) {
	r.DrawImage(s.image, src, dst)
}
