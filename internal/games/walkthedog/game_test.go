package walkthedog

import (
	"errors"
	"testing"

	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
	"github.com/curry-roux/walk-the-dog/internal/registry"
)

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("%q not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Walk the Dog" {
		t.Errorf("Title() = %q", g.Title())
	}
	if g.Viewport() != core.NewRect(0, 0, 600, 600) {
		t.Errorf("Viewport() = %+v", g.Viewport())
	}
}

func TestGameLifecycle(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := NewGame()
	if st := g.State(); st.Phase != "loading" {
		t.Errorf("phase before init = %q", st.Phase)
	}

	rc := core.DefaultConfig()
	rc.Seed = 3
	if err := g.Init(rc, newEnv(&fakeUI{}, engine.NopAudio{})); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if st := g.State(); st.Phase != "ready" || st.GameOver {
		t.Errorf("state = %+v", st)
	}

	res := g.Step(keys(core.KeyArrowRight))
	if res.State.Phase != "walking" {
		t.Errorf("phase = %q, want walking", res.State.Phase)
	}
	for i := 0; i < 10; i++ {
		res = g.Step(keys())
	}
	if res.State.Score != 40 {
		t.Errorf("score = %d, want 40", res.State.Score)
	}

	for i := 0; i < 200 && !res.State.GameOver; i++ {
		res = g.Step(keys())
	}
	if !res.State.GameOver || res.State.Phase != "game over" {
		t.Errorf("state = %+v, want game over", res.State)
	}

	if err := g.Init(rc, newEnv(&fakeUI{}, engine.NopAudio{})); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Init() error = %v", err)
	}

	rec := &recordingRenderer{}
	g.Render(rec)
	if len(rec.draws) == 0 {
		t.Error("Render() drew nothing")
	}
}

func TestGameDebugOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetDebug(true)
	defer SetDebug(false)

	g := NewGame()
	if err := g.Init(core.DefaultConfig(), newEnv(&fakeUI{}, engine.NopAudio{})); err != nil {
		t.Fatal(err)
	}
	rec := &recordingRenderer{}
	g.Render(rec)
	if len(rec.rects) == 0 {
		t.Error("debug override should draw bounding boxes")
	}
}
