package main

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pongspire/internal/audio"
	"github.com/vovakirdan/pongspire/internal/config"
	"github.com/vovakirdan/pongspire/internal/platform"
	"github.com/vovakirdan/pongspire/internal/spectate"
	"github.com/vovakirdan/pongspire/internal/storage"
)

// sideChannels are the optional outputs of a local game.
type sideChannels struct {
	Mute         bool
	SpectateAddr string
}

// buildHooks wires score storage, sound and the spectator server.
// The returned cleanup releases all of them.
func buildHooks(ctx context.Context, logger *log.Logger, cfg config.PongConfig, opts sideChannels) (platform.Hooks, func()) {
	hooks := platform.Hooks{Logger: logger}
	var cleanups []func()

	if store := openStore(logger); store != nil {
		hooks.Scores = store
		cleanups = append(cleanups, func() { closeStore(logger, store) })
	}

	if cfg.Audio.Enabled && !opts.Mute {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			logger.Warn("Sound disabled", "error", err)
		} else {
			hooks.Sound = sm
			cleanups = append(cleanups, sm.Cleanup)
		}
	}

	if opts.SpectateAddr != "" {
		hub := spectate.NewHub(logger)
		srv, err := spectate.Listen(opts.SpectateAddr, hub, logger)
		if err != nil {
			logger.Warn("Spectating disabled", "error", err)
		} else {
			srvCtx, cancel := context.WithCancel(ctx)
			done := make(chan struct{})
			go func() {
				defer close(done)
				if err := srv.Serve(srvCtx); err != nil {
					logger.Warn("Spectator server stopped", "error", err)
				}
			}()
			hooks.Spectators = hub
			cleanups = append(cleanups, func() {
				cancel()
				<-done
			})
		}
	}

	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	return hooks, cleanup
}

func closeStore(logger *log.Logger, store *storage.Store) {
	if err := store.Close(); err != nil {
		logger.Warn("Cannot close scores database", "error", err)
	}
}
