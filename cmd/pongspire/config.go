package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pongspire/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration PongSpire would use, as YAML.
Redirect it to ~/.pongspire/configs/pong.yaml to start customising.

Examples:
  pongspire config
  pongspire config --config ./my-pong.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, source, err := config.LoadPong(flagConfig)
	if err != nil {
		fatal(logger, "Cannot load configuration", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal(logger, "Cannot encode configuration", err)
	}

	fmt.Printf("# source: %s\n", source)
	fmt.Print(string(data))
}
