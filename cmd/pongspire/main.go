// pongspire is a small arcade of Pong coursework exercises that runs in a
// desktop window, in the terminal or over SSH.
//
// Usage:
//
//	pongspire list              - List available exercises
//	pongspire play [game]       - Play in a desktop window (default: pong)
//	pongspire term [game]       - Play in the terminal
//	pongspire menu              - Pick exercises interactively in the terminal
//	pongspire serve             - Start SSH server for remote play
//	pongspire watch <url>       - Watch a game started with --spectate
//	pongspire scores [game]     - Show high scores
//	pongspire config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.pongspire/scores.db)
//	--config <path>      - Use a custom pong.yaml
//	--player <name>      - Name saved with scores (default: $USER)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pongspire/internal/config"
	"github.com/vovakirdan/pongspire/internal/core"
	"github.com/vovakirdan/pongspire/internal/registry"
	"github.com/vovakirdan/pongspire/internal/storage"

	// Import exercises to register them
	_ "github.com/vovakirdan/pongspire/internal/games/paddle"
	_ "github.com/vovakirdan/pongspire/internal/games/pong"
	_ "github.com/vovakirdan/pongspire/internal/games/textures"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagPlayer   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pongspire",
	Short: "PongSpire - Pong coursework exercises in a window or a terminal",
	Long: `PongSpire runs the Pong coursework exercises: a ball, a paddle,
a score for every hit on the top edge and five lives.

Available commands:
  list     - Show all available exercises
  play     - Play in a desktop window
  term     - Play in the terminal
  menu     - Interactive exercise picker in the terminal
  serve    - Start SSH server for remote play
  watch    - Watch a game streamed with --spectate
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  pongspire play
  pongspire play textures
  pongspire term pong --fps 30
  pongspire play --spectate :8080
  pongspire watch ws://localhost:8080/ws
  pongspire serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pongspire/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pong.yaml")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name saved with scores (default: $USER)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pongspire",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("Unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fatal logs err and exits with status 1.
func fatal(logger *log.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}

// loadConfig reads the game configuration or exits.
func loadConfig(logger *log.Logger) config.PongConfig {
	cfg, source, err := config.LoadPong(flagConfig)
	if err != nil {
		fatal(logger, "Cannot load configuration", err)
	}
	logger.Debug("Configuration loaded", "source", source)
	return cfg
}

// playerName resolves --player, falling back to $USER.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if user := strings.TrimSpace(os.Getenv("USER")); user != "" {
		return user
	}
	return core.DefaultConfig().Player
}

// terminalRuntime sizes the runtime config to the controlling terminal.
func terminalRuntime() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Player = playerName()
	return rt
}

// openStore opens the scores database. Play continues without it on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("Could not open scores database", "error", err)
		return nil
	}
	return store
}

// gameArg returns the exercise named on the command line, defaulting to pong.
func gameArg(logger *log.Logger, args []string) string {
	gameID := "pong"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		logger.Error("Unknown game", "game", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pongspire list' to see available games.")
		os.Exit(1)
	}
	return gameID
}
