package walkthedog

import (
	"math/rand"
	"testing"

	"github.com/curry-roux/walk-the-dog/assets"
	"github.com/curry-roux/walk-the-dog/internal/config"
	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
)

type fakeUI struct {
	shown   int
	hidden  int
	signal  *engine.Signal
	showErr error
}

func (u *fakeUI) ShowNewGameControl() (*engine.Signal, error) {
	u.shown++
	if u.showErr != nil {
		return nil, u.showErr
	}
	u.signal = engine.NewSignal()
	return u.signal, nil
}

func (u *fakeUI) HideNewGameControl() error {
	u.hidden++
	return nil
}

type fakeAudio struct {
	played  []string
	looping []engine.Sound
	err     error
}

func (a *fakeAudio) Play(s engine.Sound) error {
	a.played = append(a.played, s.Name)
	return a.err
}

func (a *fakeAudio) PlayLooping(s engine.Sound) error {
	a.looping = append(a.looping, s)
	return a.err
}

type drawCall struct {
	image    string
	src, dst core.Rect
}

type recordingRenderer struct {
	clears []core.Rect
	draws  []drawCall
	rects  []core.Rect
	order  []string
}

func (r *recordingRenderer) Clear(rect core.Rect) {
	r.clears = append(r.clears, rect)
	r.order = append(r.order, "clear")
}

func (r *recordingRenderer) DrawImage(img *engine.ImageAsset, src, dst core.Rect) {
	r.draws = append(r.draws, drawCall{img.Name, src, dst})
	r.order = append(r.order, img.Name)
}

func (r *recordingRenderer) DrawRect(rect core.Rect) {
	r.rects = append(r.rects, rect)
	r.order = append(r.order, "rect")
}

func keys(pressed ...core.Key) core.KeyState {
	k := core.NewKeyState()
	for _, key := range pressed {
		k.Press(key)
	}
	return k
}

// fixture holds assets loaded from the embedded asset filesystem.
type fixture struct {
	cfg        config.WalkConfig
	sheet      engine.Sheet
	rhbImage   *engine.ImageAsset
	background *engine.ImageAsset
	stone      *engine.ImageAsset
	tiles      *engine.SpriteSheet
}

func loadFixture(t *testing.T) fixture {
	t.Helper()
	cfg := config.DefaultWalkConfig()
	l := engine.NewFSLoader(assets.FS)

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}

	var f fixture
	var err error
	f.cfg = cfg
	f.sheet, err = l.LoadSheet(cfg.Assets.CharacterSheet)
	must(err)
	f.rhbImage, err = l.LoadImage(cfg.Assets.CharacterImage)
	must(err)
	f.background, err = l.LoadImage(cfg.Assets.Background)
	must(err)
	f.stone, err = l.LoadImage(cfg.Assets.Stone)
	must(err)
	tileSheet, err := l.LoadSheet(cfg.Assets.TileSheet)
	must(err)
	tileImage, err := l.LoadImage(cfg.Assets.TileImage)
	must(err)
	f.tiles = engine.NewSpriteSheet(tileSheet, tileImage)
	return f
}

func (f fixture) boy(audio engine.Audio) *RedHatBoy {
	return NewRedHatBoy(f.sheet, f.rhbImage, Tuning(f.cfg), f.cfg.Character.BoxInset, audio, engine.Sound{Name: "SFX_Jump_23.mp3"})
}

func (f fixture) generator(t *testing.T, seed int64, segs config.WalkSegments) *SegmentGenerator {
	t.Helper()
	g, err := NewSegmentGenerator(rand.New(rand.NewSource(seed)), segs, f.stone, f.tiles)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func (f fixture) walk(t *testing.T, segs config.WalkSegments, audio engine.Audio) *Walk {
	t.Helper()
	return NewWalk(f.boy(audio), f.background, f.generator(t, 1, segs), WalkOptions{
		TimelineMinimum: segs.TimelineMinimum,
		ObstacleBuffer:  segs.ObstacleBuffer,
	})
}

// farSegments places a single stone far ahead so the character can run
// without hitting anything.
func farSegments() config.WalkSegments {
	segs := config.DefaultWalkConfig().Segments
	segs.Starting = "far"
	segs.Layouts = []config.Layout{{
		Name:      "far",
		Obstacles: []config.Placement{{Kind: config.KindStone, X: 100000, Y: 546}},
	}}
	return segs
}

func newEnv(ui engine.UI, audio engine.Audio) engine.Env {
	return engine.Env{
		Assets: engine.NewFSLoader(assets.FS),
		Audio:  audio,
		UI:     ui,
	}
}
