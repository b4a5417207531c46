package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/curry-roux/walk-the-dog/assets"
	"github.com/curry-roux/walk-the-dog/internal/core"
	"github.com/curry-roux/walk-the-dog/internal/engine"
	"github.com/curry-roux/walk-the-dog/internal/games/walkthedog"
	"github.com/curry-roux/walk-the-dog/internal/platform/tui"
	"github.com/curry-roux/walk-the-dog/internal/registry"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing. The game id defaults to walkthedog.

Controls:
  Right/D     - Start running
  Space/Up    - Jump
  Down/S      - Slide
  Enter/N     - New game (after game over)
  P/Esc       - Pause
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  walkthedog play
  walkthedog play --seed 7
  walkthedog play --config ./my-walk.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the terminal bell")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := walkthedog.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'walkthedog list' to see available games", gameID)
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	walkthedog.SetConfigPath(flagConfig)
	walkthedog.SetDebug(flagDebug)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	return tui.Run(game, cfg, tui.Options{
		Assets: engine.NewFSLoader(assets.FS),
		Mute:   flagMute,
	})
}
