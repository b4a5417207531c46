package engine

import "github.com/curry-roux/walk-the-dog/internal/core"

// Image is an ImageAsset placed in the world. Its bounding box always
// matches the asset's size at the current position.
type Image struct {
	asset       *ImageAsset
	position    core.Point
	boundingBox core.Rect
}

// NewImage places asset with its top-left corner at position.
func NewImage(asset *ImageAsset, position core.Point) Image {
	return Image{
		asset:       asset,
		position:    position,
		boundingBox: core.NewRectAt(position, asset.Width, asset.Height),
	}
}

// Draw renders the whole asset at the current position.
func (i *Image) Draw(r Renderer) {
	r.DrawImage(i.asset, core.NewRect(0, 0, i.asset.Width, i.asset.Height), i.boundingBox)
}

// DrawRect outlines the bounding box.
func (i *Image) DrawRect(r Renderer) {
	r.DrawRect(i.boundingBox)
}

// BoundingBox returns the area covered by the image.
func (i *Image) BoundingBox() core.Rect {
	return i.boundingBox
}

// Position returns the top-left corner.
func (i *Image) Position() core.Point {
	return i.position
}

// MoveHorizontally shifts the image by dx pixels.
func (i *Image) MoveHorizontally(dx int) {
	i.SetX(i.position.X + dx)
}

// SetX moves the left edge to x.
func (i *Image) SetX(x int) {
	i.position.X = x
	i.boundingBox.SetX(x)
}

// Right returns the x-coordinate of the right edge.
func (i *Image) Right() int {
	return i.boundingBox.Right()
}
