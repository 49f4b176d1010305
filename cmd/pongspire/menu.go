package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pongspire/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the terminal exercise picker",
	Long: `Start PongSpire in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select an exercise and
Tab for the high score table. Press B in a game to return to the menu.

Examples:
  pongspire menu
  pongspire menu --fps 30
  pongspire menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := loadConfig(logger)

	hooks, cleanup := buildHooks(context.Background(), logger, cfg, sideChannels{Mute: flagMute})

	opts := tui.SessionOptions{
		Runtime: terminalRuntime(),
		Pong:    cfg,
		Hooks:   hooks,
	}
	if store, ok := hooks.Scores.(tui.ScoreReader); ok {
		opts.Scores = store
	}

	logger.SetOutput(io.Discard)
	runErr := tui.RunSession(opts)
	logger.SetOutput(os.Stderr)

	cleanup()
	if runErr != nil {
		fatal(logger, "Error running menu", runErr)
	}
}
