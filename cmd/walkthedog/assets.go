package main

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/spf13/cobra"

	"github.com/curry-roux/walk-the-dog/assets"
	"github.com/curry-roux/walk-the-dog/internal/config"
	"github.com/curry-roux/walk-the-dog/internal/engine"
	"github.com/curry-roux/walk-the-dog/internal/games/walkthedog"
	"github.com/curry-roux/walk-the-dog/internal/platform/tui"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Validate the embedded assets",
	Long: `Loads the asset manifest and every image, sprite sheet and sound the
game uses, and checks that each frame the character can request exists.`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func runAssets(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWalk(flagConfig)
	if err != nil {
		return err
	}

	loader := engine.NewFSLoader(assets.FS)
	manifest, err := loader.Manifest()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Images:")
	for _, name := range sortedKeys(manifest.Images) {
		img := manifest.Images[name]
		fmt.Fprintf(out, "  %-16s %4dx%-4d %s\n", name, img.Width, img.Height, img.Color)
	}
	fmt.Fprintln(out, "Sounds:")
	for _, name := range sortedKeys(manifest.Sounds) {
		fmt.Fprintf(out, "  %s\n", name)
	}

	// A full initialization requests every asset and frame name up front.
	game := walkthedog.New(cfg, rand.New(rand.NewSource(1)))
	env := engine.Env{Assets: loader, Audio: engine.NopAudio{}, UI: tui.NewOverlay()}
	if err := game.Initialize(env); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nOK: %d character frames, %d platform tiles\n",
		len(walkthedog.FrameNames(walkthedog.Tuning(cfg))), len(cfg.Segments.Platform.Sprites))
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
