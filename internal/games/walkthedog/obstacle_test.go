package walkthedog

import (
	"testing"

	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
	"github.com/curry-roux/walk-the-dog/internal/games/walkthedog/rhb"
)

func (f fixture) platform(x, y int) *Platform {
	boxes := make([]core.Rect, len(f.cfg.Segments.Platform.Boxes))
	for i, b := range f.cfg.Segments.Platform.Boxes {
		boxes[i] = core.NewRect(b.X, b.Y, b.Width, b.Height)
	}
	return NewPlatform(f.tiles, core.Point{X: x, Y: y}, f.cfg.Segments.Platform.Sprites, boxes)
}

func TestBarrierKnocksOut(t *testing.T) {
	f := loadFixture(t)

	tests := []struct {
		name  string
		setup func(*RedHatBoy)
	}{
		{"running", func(b *RedHatBoy) { b.RunRight() }},
		{"sliding", func(b *RedHatBoy) { b.RunRight(); b.Slide() }},
		{"falling onto it", func(b *RedHatBoy) {
			b.RunRight()
			b.Jump()
			for b.VelocityY() <= 0 {
				b.Update()
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boy := f.boy(engine.NopAudio{})
			tt.setup(boy)

			// Cover the character's whole box.
			box := boy.BoundingBox()
			barrier := NewBarrier(engine.NewImage(f.stone, core.Point{X: box.X, Y: box.Y}))
			barrier.CheckIntersection(boy)
			if boy.Phase() != rhb.PhaseFalling {
				t.Fatalf("phase = %s, want falling", boy.Phase())
			}

			for i := 0; i < 29; i++ {
				boy.Update()
			}
			if !boy.KnockedOut() {
				t.Errorf("phase = %s, want knocked out", boy.Phase())
			}
		})
	}
}

func TestBarrierMiss(t *testing.T) {
	f := loadFixture(t)
	boy := f.boy(engine.NopAudio{})
	boy.RunRight()

	barrier := NewBarrier(engine.NewImage(f.stone, core.Point{X: 150, Y: 546}))
	barrier.CheckIntersection(boy)
	if boy.Phase() != rhb.PhaseRunning {
		t.Errorf("phase = %s, want running", boy.Phase())
	}
}

func TestBarrierTouchingEdgeCollides(t *testing.T) {
	f := loadFixture(t)
	boy := f.boy(engine.NopAudio{})
	boy.RunRight()

	// Run (1).png bounding box spans x 8..86; a stone starting at 86 touches it.
	barrier := NewBarrier(engine.NewImage(f.stone, core.Point{X: 86, Y: 546}))
	barrier.CheckIntersection(boy)
	if boy.Phase() != rhb.PhaseFalling {
		t.Errorf("phase = %s, want falling", boy.Phase())
	}
}

func TestPlatformLanding(t *testing.T) {
	f := loadFixture(t)
	boy := f.boy(engine.NopAudio{})
	boy.RunRight()
	boy.Jump()
	for boy.VelocityY() <= 0 {
		boy.Update()
	}
	// Apex passed: y 180, velocity.y 1; Jump sprite box spans y 194..301.
	if boy.PosY() != 180 {
		t.Fatalf("PosY() = %d, want 180", boy.PosY())
	}

	platform := f.platform(0, 250)
	platform.CheckIntersection(boy)

	if boy.Phase() != rhb.PhaseRunning {
		t.Fatalf("phase = %s, want running", boy.Phase())
	}
	if got, want := boy.PosY(), 250-121; got != want {
		t.Errorf("PosY() = %d, want %d", got, want)
	}
	if boy.State().Context().Frame != 0 {
		t.Errorf("frame = %d, want 0", boy.State().Context().Frame)
	}
}

func TestPlatformSideHitKnocksOut(t *testing.T) {
	f := loadFixture(t)

	t.Run("not falling", func(t *testing.T) {
		boy := f.boy(engine.NopAudio{})
		boy.RunRight()
		platform := f.platform(0, 500)
		platform.CheckIntersection(boy)
		if boy.Phase() != rhb.PhaseFalling {
			t.Errorf("phase = %s, want falling", boy.Phase())
		}
	})

	t.Run("falling but below the top", func(t *testing.T) {
		boy := f.boy(engine.NopAudio{})
		boy.RunRight()
		boy.Jump()
		for boy.VelocityY() <= 0 {
			boy.Update()
		}
		// Character top at 180 is below a platform top at 150.
		platform := f.platform(0, 150)
		platform.CheckIntersection(boy)
		if boy.Phase() != rhb.PhaseFalling {
			t.Errorf("phase = %s, want falling", boy.Phase())
		}
	})
}

func TestPlatformMiss(t *testing.T) {
	f := loadFixture(t)
	boy := f.boy(engine.NopAudio{})
	boy.RunRight()

	platform := f.platform(370, 420)
	platform.CheckIntersection(boy)
	if boy.Phase() != rhb.PhaseRunning {
		t.Errorf("phase = %s, want running", boy.Phase())
	}
}

func TestPlatformGeometry(t *testing.T) {
	f := loadFixture(t)
	p := f.platform(370, 420)

	boxes := p.BoundingBoxes()
	want := []core.Rect{
		core.NewRect(370, 420, 60, 54),
		core.NewRect(430, 420, 264, 93),
		core.NewRect(694, 420, 60, 54),
	}
	for i := range want {
		if boxes[i] != want[i] {
			t.Errorf("box %d = %+v, want %+v", i, boxes[i], want[i])
		}
	}
	if p.Right() != 754 {
		t.Errorf("Right() = %d, want 754", p.Right())
	}

	p.MoveHorizontally(-4)
	if p.Right() != 750 || p.Position().X != 366 || p.BoundingBoxes()[0].X != 366 {
		t.Errorf("after move: right %d position %+v", p.Right(), p.Position())
	}

	rec := &recordingRenderer{}
	p.Draw(rec)
	if len(rec.draws) != 3 {
		t.Fatalf("draws = %d, want 3", len(rec.draws))
	}
	for i, d := range rec.draws {
		if d.image != "tiles.png" || d.dst.X != 366+i*128 || d.dst.Y != 420 {
			t.Errorf("draw %d = %+v", i, d)
		}
	}
	p.DrawRect(rec)
	if len(rec.rects) != 3 {
		t.Errorf("rects = %d, want 3", len(rec.rects))
	}
}

func TestPlatformWithoutBoxes(t *testing.T) {
	f := loadFixture(t)
	p := NewPlatform(f.tiles, core.Point{X: 500, Y: 400}, nil, nil)
	if p.Right() != 0 {
		t.Errorf("Right() = %d, want 0", p.Right())
	}
}

func TestRightmost(t *testing.T) {
	f := loadFixture(t)
	if Rightmost(nil) != 0 {
		t.Error("Rightmost(nil) should be 0")
	}

	obstacles := []Obstacle{
		f.platform(370, 420),
		NewBarrier(engine.NewImage(f.stone, core.Point{X: 150, Y: 546})),
	}
	if got := Rightmost(obstacles); got != 754 {
		t.Errorf("Rightmost() = %d, want 754", got)
	}
}
