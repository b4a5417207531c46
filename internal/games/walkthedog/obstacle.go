package walkthedog

import (
	"fmt"

	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
)

// Obstacle is anything in the world the character can collide with.
type Obstacle interface {
	// CheckIntersection resolves a collision with the character, if any.
	CheckIntersection(boy *RedHatBoy)
	Draw(r engine.Renderer)
	DrawRect(r engine.Renderer)
	MoveHorizontally(dx int)
	// Right returns the x-coordinate of the obstacle's right edge.
	Right() int
}

// Barrier is a solid obstacle: touching it knocks the character out.
type Barrier struct {
	image engine.Image
}

// NewBarrier creates a barrier from a placed image.
func NewBarrier(image engine.Image) *Barrier {
	return &Barrier{image: image}
}

// CheckIntersection implements Obstacle.
func (b *Barrier) CheckIntersection(boy *RedHatBoy) {
	if boy.BoundingBox().Intersects(b.image.BoundingBox()) {
		boy.KnockOut()
	}
}

// Draw implements Obstacle.
func (b *Barrier) Draw(r engine.Renderer) { b.image.Draw(r) }

// DrawRect implements Obstacle.
func (b *Barrier) DrawRect(r engine.Renderer) { b.image.DrawRect(r) }

// MoveHorizontally implements Obstacle.
func (b *Barrier) MoveHorizontally(dx int) { b.image.MoveHorizontally(dx) }

// Right implements Obstacle.
func (b *Barrier) Right() int { return b.image.Right() }

// BoundingBox returns the barrier's collision box.
func (b *Barrier) BoundingBox() core.Rect { return b.image.BoundingBox() }

// Platform is a run of tiles the character can land on from above.
// Hitting it from the side or from below knocks the character out.
type Platform struct {
	sheet         *engine.SpriteSheet
	sprites       []engine.Cell
	boundingBoxes []core.Rect
	position      core.Point
}

// NewPlatform places a platform at position. Sprites are drawn left to
// right; boxes are relative to position.
func NewPlatform(sheet *engine.SpriteSheet, position core.Point, spriteNames []string, boxes []core.Rect) *Platform {
	sprites := make([]engine.Cell, 0, len(spriteNames))
	for _, name := range spriteNames {
		cell, ok := sheet.Cell(name)
		if !ok {
			panic(fmt.Sprintf("walkthedog: sprite %q not found in tile sheet", name))
		}
		sprites = append(sprites, cell)
	}

	placed := make([]core.Rect, len(boxes))
	for i, box := range boxes {
		placed[i] = core.NewRect(box.X+position.X, box.Y+position.Y, box.W, box.H)
	}

	return &Platform{
		sheet:         sheet,
		sprites:       sprites,
		boundingBoxes: placed,
		position:      position,
	}
}

// BoundingBoxes returns the collision boxes in world coordinates.
func (p *Platform) BoundingBoxes() []core.Rect { return p.boundingBoxes }

// Position returns the top-left corner.
func (p *Platform) Position() core.Point { return p.position }

// CheckIntersection implements Obstacle. Only the first intersecting box
// counts. A character falling onto the platform from above lands on that
// box; any other contact knocks it out.
func (p *Platform) CheckIntersection(boy *RedHatBoy) {
	boyBox := boy.BoundingBox()
	for _, box := range p.boundingBoxes {
		if !boyBox.Intersects(box) {
			continue
		}
		if boy.VelocityY() > 0 && boy.PosY() < p.position.Y {
			boy.LandOn(box.Y)
		} else {
			boy.KnockOut()
		}
		return
	}
}

// Draw implements Obstacle.
func (p *Platform) Draw(r engine.Renderer) {
	x := 0
	for _, sprite := range p.sprites {
		p.sheet.Draw(r,
			sprite.Frame.Rect(),
			core.NewRect(p.position.X+x, p.position.Y, sprite.Frame.W, sprite.Frame.H),
		)
		x += sprite.Frame.W
	}
}

// DrawRect implements Obstacle.
func (p *Platform) DrawRect(r engine.Renderer) {
	for _, box := range p.boundingBoxes {
		r.DrawRect(box)
	}
}

// MoveHorizontally implements Obstacle.
func (p *Platform) MoveHorizontally(dx int) {
	p.position.X += dx
	for i := range p.boundingBoxes {
		p.boundingBoxes[i].SetX(p.boundingBoxes[i].X + dx)
	}
}

// Right implements Obstacle. It is the right edge of the last box, or 0 for
// a platform without boxes.
func (p *Platform) Right() int {
	if len(p.boundingBoxes) == 0 {
		return 0
	}
	return p.boundingBoxes[len(p.boundingBoxes)-1].Right()
}

// Rightmost returns the largest right edge among obstacles, or 0 if there
// are none.
func Rightmost(obstacles []Obstacle) int {
	if len(obstacles) == 0 {
		return 0
	}
	right := obstacles[0].Right()
	for _, o := range obstacles[1:] {
		right = max(right, o.Right())
	}
	return right
}
