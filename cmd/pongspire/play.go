package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pongspire/internal/core"
	"github.com/vovakirdan/pongspire/internal/platform/window"
	"github.com/vovakirdan/pongspire/internal/registry"
)

var (
	flagSpectate   string
	flagMute       bool
	flagFullscreen bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play an exercise in a desktop window",
	Long: `Open a window and play the given exercise (default: pong).

Controls:
  Left/A, Right/D  - Move the paddle
  P                - Pause
  R                - Restart
  Esc/Q            - Quit

Examples:
  pongspire play
  pongspire play paddle
  pongspire play textures --fullscreen
  pongspire play --spectate :8080
  pongspire play --config ./my-pong.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Stream frames to spectators on this address (e.g. :8080)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig(logger)
	if flagFullscreen {
		cfg.Window.Fullscreen = true
	}

	gameID := gameArg(logger, args)
	game, err := registry.Create(gameID, cfg)
	if err != nil {
		fatal(logger, "Cannot create game", err)
	}

	hooks, cleanup := buildHooks(context.Background(), logger, cfg, sideChannels{
		Mute:         flagMute,
		SpectateAddr: flagSpectate,
	})

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Player = playerName()

	logger.Info("Starting", "game", gameID, "player", rt.Player)
	runErr := window.Run(game, cfg, window.Options{Runtime: rt, Hooks: hooks})

	cleanup()
	if runErr != nil {
		fatal(logger, "Error running game", runErr)
	}
}
