package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pongspire/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PongSpire SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the exercise menu.
Scores are saved under the SSH user name in the server's database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pongspire/host_key

Examples:
  pongspire serve                           # Listen on :23234 with auto-generated key
  pongspire serve --ssh :2222               # Listen on port 2222
  pongspire serve --host-key ./my_host_key  # Use specific host key
  pongspire serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := loadConfig(logger)

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.DBPath = flagDBPath
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(srvCfg, cfg, logger)
	if err != nil {
		fatal(logger, "Cannot create server", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Connect with: ssh localhost -p <port>", "address", server.Addr())
	if err := server.ListenAndServe(ctx); err != nil {
		fatal(logger, "Server error", err)
	}
}
