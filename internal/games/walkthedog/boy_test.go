package walkthedog

import (
	"testing"

	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
	"github.com/curry-roux/walk-the-dog/internal/games/walkthedog/rhb"
)

func TestEmbeddedSheetsHaveEveryFrame(t *testing.T) {
	f := loadFixture(t)
	if err := f.sheet.Require(FrameNames(Tuning(f.cfg))...); err != nil {
		t.Error(err)
	}
	if err := f.tiles.Sheet().Require(f.cfg.Segments.Platform.Sprites...); err != nil {
		t.Error(err)
	}
}

func TestFrameNames(t *testing.T) {
	names := FrameNames(rhb.DefaultTuning())
	// 10 idle, 8 run, 5 slide, 12 jump, 10 dead
	if len(names) != 45 {
		t.Errorf("len(FrameNames) = %d, want 45", len(names))
	}
	if names[0] != "Idle (1).png" {
		t.Errorf("first = %q", names[0])
	}
	if last := names[len(names)-1]; last != "Dead (10).png" {
		t.Errorf("last = %q", last)
	}
}

func TestBoyFrameName(t *testing.T) {
	f := loadFixture(t)
	boy := f.boy(engine.NopAudio{})

	if got := boy.FrameName(); got != "Idle (1).png" {
		t.Errorf("FrameName() = %q", got)
	}
	for i := 0; i < 3; i++ {
		boy.Update()
	}
	if got := boy.FrameName(); got != "Idle (2).png" {
		t.Errorf("FrameName() after 3 ticks = %q", got)
	}

	boy.RunRight()
	if got := boy.FrameName(); got != "Run (1).png" {
		t.Errorf("FrameName() running = %q", got)
	}
}

func TestBoyBoxes(t *testing.T) {
	f := loadFixture(t)
	boy := f.boy(engine.NopAudio{})

	// Idle (1).png: 80x121 with a 24px source offset, at (-20, 479).
	if got, want := boy.DestinationBox(), core.NewRect(4, 479, 80, 121); got != want {
		t.Errorf("DestinationBox() = %+v, want %+v", got, want)
	}
	if got, want := boy.BoundingBox(), core.NewRect(22, 493, 52, 107); got != want {
		t.Errorf("BoundingBox() = %+v, want %+v", got, want)
	}

	rec := &recordingRenderer{}
	boy.Draw(rec)
	boy.DrawRect(rec)
	if len(rec.draws) != 1 || rec.draws[0].image != "rhb.png" {
		t.Fatalf("draws = %+v", rec.draws)
	}
	if rec.draws[0].src != core.NewRect(0, 0, 80, 121) {
		t.Errorf("src = %+v", rec.draws[0].src)
	}
	if len(rec.rects) != 1 || rec.rects[0] != boy.BoundingBox() {
		t.Errorf("rects = %+v", rec.rects)
	}
}

func TestBoyMissingSpritePanics(t *testing.T) {
	f := loadFixture(t)
	boy := NewRedHatBoy(engine.Sheet{Frames: map[string]engine.Cell{}}, f.rhbImage, Tuning(f.cfg), f.cfg.Character.BoxInset, engine.NopAudio{}, engine.Sound{})

	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing sprite")
		}
	}()
	boy.BoundingBox()
}

func TestBoyReset(t *testing.T) {
	f := loadFixture(t)
	audio := &fakeAudio{}
	boy := f.boy(audio)
	boy.RunRight()
	boy.KnockOut()

	fresh := boy.Reset()
	if fresh.Phase() != rhb.PhaseIdle {
		t.Errorf("phase = %s, want idle", fresh.Phase())
	}
	if fresh.State().Context().Position != (core.Point{X: -20, Y: 479}) {
		t.Errorf("position = %+v", fresh.State().Context().Position)
	}

	fresh.RunRight()
	fresh.Jump()
	if len(audio.played) != 1 || audio.played[0] != "SFX_Jump_23.mp3" {
		t.Errorf("reset boy should keep audio, played = %v", audio.played)
	}
}
