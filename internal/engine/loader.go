package engine

import (
	"fmt"
	"io/fs"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/curry-roux/walk-the-dog/internal/core"
)

// ManifestFile is the name of the asset manifest inside an asset filesystem.
const ManifestFile = "manifest.yaml"

// AssetLoader resolves asset names to loaded assets.
type AssetLoader interface {
	LoadImage(name string) (*ImageAsset, error)
	LoadSheet(path string) (Sheet, error)
	LoadSound(name string) (Sound, error)
}

// Env bundles the collaborators a game needs at initialization.
type Env struct {
	Assets AssetLoader
	Audio  Audio
	UI     UI
}

// Manifest describes how image and sound names map to terminal assets.
type Manifest struct {
	Images map[string]ImageSpec `yaml:"images"`
	Sounds map[string]SoundSpec `yaml:"sounds"`
}

// ImageSpec is the manifest entry for one image.
type ImageSpec struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Color       string `yaml:"color"`
	Glyph       string `yaml:"glyph"`
	Texture     string `yaml:"texture"`
	TextureCell int    `yaml:"texture_cell"`
}

// SoundSpec is the manifest entry for one sound.
type SoundSpec struct {
	Bell   bool     `yaml:"bell"`
	Volume *float64 `yaml:"volume"`
}

// FSLoader loads assets from a filesystem holding a manifest and JSON
// sprite sheets.
type FSLoader struct {
	fsys fs.FS

	once     sync.Once
	manifest Manifest
	err      error
}

// NewFSLoader creates a loader over fsys. The manifest is read lazily on
// first use.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// Manifest returns the parsed manifest.
func (l *FSLoader) Manifest() (Manifest, error) {
	l.once.Do(func() {
		data, err := fs.ReadFile(l.fsys, ManifestFile)
		if err != nil {
			l.err = fmt.Errorf("engine: cannot read %s: %w", ManifestFile, err)
			return
		}
		if err := yaml.Unmarshal(data, &l.manifest); err != nil {
			l.err = fmt.Errorf("engine: invalid %s: %w", ManifestFile, err)
		}
	})
	return l.manifest, l.err
}

// LoadImage implements AssetLoader.
func (l *FSLoader) LoadImage(name string) (*ImageAsset, error) {
	m, err := l.Manifest()
	if err != nil {
		return nil, err
	}
	spec, ok := m.Images[name]
	if !ok {
		return nil, fmt.Errorf("engine: unknown image %q", name)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("engine: image %q has invalid size %dx%d", name, spec.Width, spec.Height)
	}

	img := &ImageAsset{
		Name:        name,
		Width:       spec.Width,
		Height:      spec.Height,
		TextureCell: spec.TextureCell,
	}
	if spec.Color != "" {
		c, ok := core.ParseColor(spec.Color)
		if !ok {
			return nil, fmt.Errorf("engine: image %q has unknown color %q", name, spec.Color)
		}
		img.Color = c
	}
	if spec.Texture != "" {
		img.Texture = []rune(spec.Texture)
	} else if g := []rune(spec.Glyph); len(g) > 0 {
		img.Glyph = g[0]
	} else {
		img.Glyph = '█'
	}
	return img, nil
}

// LoadSheet implements AssetLoader.
func (l *FSLoader) LoadSheet(path string) (Sheet, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("engine: cannot open sheet %q: %w", path, err)
	}
	defer f.Close()

	sheet, err := DecodeSheet(f)
	if err != nil {
		return Sheet{}, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

// LoadSound implements AssetLoader.
func (l *FSLoader) LoadSound(name string) (Sound, error) {
	m, err := l.Manifest()
	if err != nil {
		return Sound{}, err
	}
	spec, ok := m.Sounds[name]
	if !ok {
		return Sound{}, fmt.Errorf("engine: unknown sound %q", name)
	}
	s := Sound{Name: name, Bell: spec.Bell, Volume: 1}
	if spec.Volume != nil {
		s.Volume = *spec.Volume
	}
	return s, nil
}
