package walkthedog

import (
	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
)

// Walk is one level: the character, a pair of wrapping backgrounds and the
// obstacles generated ahead of it.
type Walk struct {
	boy         *RedHatBoy
	backgrounds [2]engine.Image
	obstacles   []Obstacle
	segments    *SegmentGenerator

	timeline        int // Rightmost x covered by generated obstacles
	timelineMinimum int
	obstacleBuffer  int

	distance int // World pixels scrolled since the level started
	debug    bool
}

// WalkOptions holds the tunables of a level.
type WalkOptions struct {
	TimelineMinimum int
	ObstacleBuffer  int
	Debug           bool // Draw bounding boxes
}

// NewWalk starts a level with the starting segment at offset 0 and two
// backgrounds side by side.
func NewWalk(boy *RedHatBoy, background *engine.ImageAsset, segments *SegmentGenerator, opts WalkOptions) *Walk {
	obstacles := segments.Starting()
	return &Walk{
		boy: boy,
		backgrounds: [2]engine.Image{
			engine.NewImage(background, core.Point{X: 0, Y: 0}),
			engine.NewImage(background, core.Point{X: background.Width, Y: 0}),
		},
		obstacles:       obstacles,
		segments:        segments,
		timeline:        Rightmost(obstacles),
		timelineMinimum: opts.TimelineMinimum,
		obstacleBuffer:  opts.ObstacleBuffer,
		debug:           opts.Debug,
	}
}

// Reset returns a new level reusing the backgrounds, sprite sheets and
// generator: a fresh idle character and the starting segment at offset 0.
func (w *Walk) Reset() *Walk {
	obstacles := w.segments.Starting()
	return &Walk{
		boy:             w.boy.Reset(),
		backgrounds:     w.backgrounds,
		obstacles:       obstacles,
		segments:        w.segments,
		timeline:        Rightmost(obstacles),
		timelineMinimum: w.timelineMinimum,
		obstacleBuffer:  w.obstacleBuffer,
		debug:           w.debug,
	}
}

// Velocity is the world scroll speed: the opposite of the character's.
func (w *Walk) Velocity() int {
	return -w.boy.WalkingSpeed()
}

// Update advances the level by one tick and reports whether the character
// has been knocked out.
func (w *Walk) Update(keys core.KeyState) bool {
	if keys.IsPressed(core.KeyArrowDown) {
		w.boy.Slide()
	}
	if keys.IsPressed(core.KeySpace) {
		w.boy.Jump()
	}
	w.boy.Update()

	velocity := w.Velocity()
	w.distance -= velocity

	first, second := &w.backgrounds[0], &w.backgrounds[1]
	first.MoveHorizontally(velocity)
	second.MoveHorizontally(velocity)
	if first.Right() < 0 {
		first.SetX(second.Right())
	}
	if second.Right() < 0 {
		second.SetX(first.Right())
	}

	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	clear(w.obstacles[len(kept):])
	w.obstacles = kept

	for _, o := range w.obstacles {
		o.MoveHorizontally(velocity)
		o.CheckIntersection(w.boy)
	}

	if w.timeline < w.timelineMinimum {
		w.GenerateNextSegment()
	} else {
		w.timeline += velocity
	}

	return w.KnockedOut()
}

// GenerateNextSegment appends a random segment after the timeline plus the
// buffer and moves the timeline to its right edge.
func (w *Walk) GenerateNextSegment() {
	next := w.segments.Next(w.timeline + w.obstacleBuffer)
	w.timeline = Rightmost(next)
	w.obstacles = append(w.obstacles, next...)
}

// KnockedOut reports whether the character is out.
func (w *Walk) KnockedOut() bool {
	return w.boy.KnockedOut()
}

// Draw renders backgrounds, the character and obstacles, in that order.
func (w *Walk) Draw(r engine.Renderer) {
	for i := range w.backgrounds {
		w.backgrounds[i].Draw(r)
	}
	w.boy.Draw(r)
	for _, o := range w.obstacles {
		o.Draw(r)
	}

	if w.debug {
		w.boy.DrawRect(r)
		for _, o := range w.obstacles {
			o.DrawRect(r)
		}
	}
}

// Boy returns the character.
func (w *Walk) Boy() *RedHatBoy { return w.boy }

// Obstacles returns the live obstacles in generation order.
func (w *Walk) Obstacles() []Obstacle { return w.obstacles }

// Timeline returns the rightmost generated x-coordinate.
func (w *Walk) Timeline() int { return w.timeline }

// Backgrounds returns the two background images.
func (w *Walk) Backgrounds() [2]engine.Image { return w.backgrounds }

// Distance returns how far the world has scrolled.
func (w *Walk) Distance() int { return w.distance }

// SetDebug toggles bounding box drawing.
func (w *Walk) SetDebug(on bool) { w.debug = on }
