package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pongspire/internal/platform/tui"
	"github.com/vovakirdan/pongspire/internal/spectate"
)

var watchCmd = &cobra.Command{
	Use:   "watch <url>",
	Short: "Watch a game streamed with --spectate",
	Long: `Connect to a game started with --spectate and render its frames
in the terminal. Press Q to stop watching.

Examples:
  pongspire play --spectate :8080
  pongspire watch ws://localhost:8080/ws`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func runWatch(_ *cobra.Command, args []string) {
	logger := newLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := spectate.Dial(ctx, args[0])
	cancel()
	if err != nil {
		fatal(logger, "Cannot connect", err)
	}
	defer client.Close()

	rt := terminalRuntime()
	if err := tui.RunWatch(client, rt.ScreenW, rt.ScreenH); err != nil {
		fatal(logger, "Error watching", err)
	}
}
