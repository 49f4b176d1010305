package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pongspire/internal/platform/tui"
	"github.com/vovakirdan/pongspire/internal/registry"
)

var termCmd = &cobra.Command{
	Use:   "term [game]",
	Short: "Play an exercise in the terminal",
	Long: `Play the given exercise (default: pong) in the terminal.
The world is scaled to fit the terminal; the top row shows the HUD.

Terminals report key presses but not releases, so each press keeps
the paddle moving for terminal.key_hold_ms (default 180ms).

Controls:
  Left/A/H, Right/D/L  - Move the paddle
  P                    - Pause
  R                    - Restart
  Ctrl+S               - Save a text screenshot
  Esc/Q/Ctrl+C         - Quit

Examples:
  pongspire term
  pongspire term pong --fps 30
  pongspire term --spectate :8080`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Stream frames to spectators on this address (e.g. :8080)")
	termCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runTerm(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig(logger)

	gameID := gameArg(logger, args)
	game, err := registry.Create(gameID, cfg)
	if err != nil {
		fatal(logger, "Cannot create game", err)
	}

	hooks, cleanup := buildHooks(context.Background(), logger, cfg, sideChannels{
		Mute:         flagMute,
		SpectateAddr: flagSpectate,
	})

	// Bubble Tea owns the terminal until the program exits
	logger.SetOutput(io.Discard)
	runErr := tui.Run(game, tui.Options{
		Runtime: terminalRuntime(),
		KeyHold: time.Duration(cfg.Terminal.KeyHoldMS) * time.Millisecond,
		Hooks:   hooks,
	})
	logger.SetOutput(os.Stderr)

	cleanup()
	if runErr != nil {
		fatal(logger, "Error running game", runErr)
	}
}
