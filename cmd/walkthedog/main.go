// walkthedog is an endless runner played in the terminal.
//
// Usage:
//
//	walkthedog play          - Play the game
//	walkthedog list          - List available games
//	walkthedog assets        - Check the embedded assets
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible segments
//	--config <path>    - Use a custom walk.yaml
//	--log-file <path>  - Write logs to a file
//	--debug            - Debug logging and bounding boxes
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/curry-roux/walk-the-dog/internal/games/walkthedog"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "walkthedog",
	Short: "Walk the Dog - an endless runner in your terminal",
	Long: `Walk the Dog is an endless runner. Run right, jump over stones,
slide under platforms or land on top of them.

Available commands:
  play     - Start the game
  list     - Show all available games
  assets   - Validate the embedded assets

Examples:
  walkthedog play
  walkthedog play --seed 42 --debug --log-file walk.log
  walkthedog assets`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom walk.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discarded)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and bounding boxes")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(assetsCmd)
}

// setupLogger installs the default logger. The alternate screen owns the
// terminal, so logs go to --log-file or nowhere.
func setupLogger() error {
	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "walkthedog",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
	return nil
}
