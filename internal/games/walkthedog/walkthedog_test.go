package walkthedog

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/curry-roux/walk-the-dog/internal/config"
	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
	"github.com/curry-roux/walk-the-dog/internal/games/walkthedog/rhb"
)

func newInitialized(t *testing.T, cfg config.WalkConfig, ui engine.UI, audio engine.Audio) *WalkTheDog {
	t.Helper()
	g := New(cfg, rand.New(rand.NewSource(1)))
	if err := g.Initialize(newEnv(ui, audio)); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return g
}

func TestEndToEnd(t *testing.T) {
	ui := &fakeUI{}
	g := newInitialized(t, config.DefaultWalkConfig(), ui, engine.NopAudio{})

	if g.Phase() != PhaseReady {
		t.Fatalf("phase = %s, want ready", g.Phase())
	}

	// Ready keeps animating without moving.
	g.Update(keys())
	if g.Phase() != PhaseReady || g.Walk().Boy().State().Context().Frame != 1 {
		t.Fatalf("ready tick: phase %s frame %d", g.Phase(), g.Walk().Boy().State().Context().Frame)
	}

	g.Update(keys(core.KeyArrowRight))
	if g.Phase() != PhaseWalking {
		t.Fatalf("phase = %s, want walking", g.Phase())
	}
	boy := g.Walk().Boy()
	if boy.Phase() != rhb.PhaseRunning || boy.WalkingSpeed() != 4 {
		t.Fatalf("boy %s at speed %d", boy.Phase(), boy.WalkingSpeed())
	}

	// The starting stone knocks the character out.
	for i := 0; i < 200 && g.Phase() == PhaseWalking; i++ {
		g.Update(keys())
	}
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, want game over", g.Phase())
	}
	if ui.shown != 1 {
		t.Errorf("new game control shown %d times", ui.shown)
	}

	// Frozen until the control fires.
	frozen := g.Walk()
	for i := 0; i < 5; i++ {
		g.Update(keys(core.KeyArrowRight))
	}
	if g.Phase() != PhaseGameOver || g.Walk() != frozen {
		t.Fatal("game over should ignore input")
	}

	ui.signal.Fire()
	g.Update(keys())
	if g.Phase() != PhaseReady {
		t.Fatalf("phase = %s, want ready", g.Phase())
	}
	if ui.hidden != 1 {
		t.Errorf("new game control hidden %d times", ui.hidden)
	}
	w := g.Walk()
	if w == frozen {
		t.Error("walk should be rebuilt on new game")
	}
	if w.Timeline() != 754 || w.Boy().Phase() != rhb.PhaseIdle {
		t.Errorf("reset walk: timeline %d, boy %s", w.Timeline(), w.Boy().Phase())
	}
}

func TestGameOverWithoutControl(t *testing.T) {
	ui := &fakeUI{showErr: errors.New("no ui")}
	g := newInitialized(t, config.DefaultWalkConfig(), ui, engine.NopAudio{})

	g.Update(keys(core.KeyArrowRight))
	for i := 0; i < 200 && g.Phase() == PhaseWalking; i++ {
		g.Update(keys())
	}
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, want game over", g.Phase())
	}
	g.Update(keys())
	if g.Phase() != PhaseGameOver {
		t.Errorf("phase = %s, want game over", g.Phase())
	}
}

func TestInitializeTwice(t *testing.T) {
	g := newInitialized(t, config.DefaultWalkConfig(), &fakeUI{}, engine.NopAudio{})
	g.Update(keys(core.KeyArrowRight))
	walk := g.Walk()

	err := g.Initialize(newEnv(&fakeUI{}, engine.NopAudio{}))
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second Initialize() error = %v, want ErrAlreadyInitialized", err)
	}
	if g.Phase() != PhaseWalking || g.Walk() != walk {
		t.Error("second Initialize() should leave the game untouched")
	}
}

func TestInitializeStartsMusic(t *testing.T) {
	cfg := config.DefaultWalkConfig()
	cfg.Audio.Volume = 0.5
	audio := &fakeAudio{}
	newInitialized(t, cfg, &fakeUI{}, audio)

	if len(audio.looping) != 1 || audio.looping[0].Name != "background_song.mp3" {
		t.Fatalf("looping = %+v", audio.looping)
	}
	// Manifest volume 0.3 scaled by the configured 0.5.
	if v := audio.looping[0].Volume; v < 0.149 || v > 0.151 {
		t.Errorf("volume = %v, want 0.15", v)
	}
}

func TestInitializeMusicFailureIsIgnored(t *testing.T) {
	audio := &fakeAudio{err: errors.New("no device")}
	g := newInitialized(t, config.DefaultWalkConfig(), &fakeUI{}, audio)
	if g.Phase() != PhaseReady {
		t.Errorf("phase = %s, want ready", g.Phase())
	}
}

func TestInitializeMuted(t *testing.T) {
	cfg := config.DefaultWalkConfig()
	cfg.Audio.Mute = true
	audio := &fakeAudio{}
	g := newInitialized(t, cfg, &fakeUI{}, audio)

	g.Update(keys(core.KeyArrowRight))
	g.Update(keys(core.KeySpace))
	if len(audio.looping) != 0 || len(audio.played) != 0 {
		t.Errorf("muted game played %v / %v", audio.played, audio.looping)
	}
}

func TestInitializeErrors(t *testing.T) {
	manifest := []byte(`
images:
  rhb.png: {width: 10, height: 10}
  BG.png: {width: 10, height: 10}
  Stone.png: {width: 10, height: 10}
  tiles.png: {width: 10, height: 10}
sounds:
  SFX_Jump_23.mp3: {}
  background_song.mp3: {}
`)
	partialSheet := []byte(`{"frames": {"Idle (1).png": {"frame": {"x":0,"y":0,"w":1,"h":1}, "spriteSourceSize": {"x":0,"y":0,"w":1,"h":1}}}}`)

	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{"no manifest", fstest.MapFS{}, "rhb.json"},
		{"missing frames", fstest.MapFS{
			engine.ManifestFile: {Data: manifest},
			"rhb.json":          {Data: partialSheet},
		}, "Run (1).png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(config.DefaultWalkConfig(), rand.New(rand.NewSource(1)))
			err := g.Initialize(engine.Env{Assets: engine.NewFSLoader(tt.fsys), UI: &fakeUI{}})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
			if g.Phase() != PhaseLoading {
				t.Errorf("phase = %s, want loading", g.Phase())
			}
		})
	}

	g := New(config.DefaultWalkConfig(), nil)
	if err := g.Initialize(engine.Env{}); err == nil {
		t.Error("expected error for empty environment")
	}
}

func TestUpdateAndDrawBeforeInitialize(t *testing.T) {
	g := New(config.DefaultWalkConfig(), nil)
	g.Update(keys(core.KeyArrowRight))

	rec := &recordingRenderer{}
	g.Draw(rec)
	if len(rec.clears) != 1 || rec.clears[0] != core.NewRect(0, 0, 600, 600) {
		t.Errorf("clears = %+v", rec.clears)
	}
	if len(rec.draws) != 0 {
		t.Errorf("draws = %d, want 0", len(rec.draws))
	}
}

func TestDrawClearsFirst(t *testing.T) {
	g := newInitialized(t, config.DefaultWalkConfig(), &fakeUI{}, engine.NopAudio{})

	rec := &recordingRenderer{}
	g.Draw(rec)
	if len(rec.order) == 0 || rec.order[0] != "clear" {
		t.Fatalf("order = %v", rec.order)
	}
	if len(rec.draws) != 7 {
		t.Errorf("draws = %d, want 7", len(rec.draws))
	}
}
