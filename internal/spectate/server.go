package spectate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Path is the WebSocket endpoint served by Server.
const Path = "/ws"

// Server exposes a hub on an HTTP listener.
type Server struct {
	hub    *Hub
	logger *log.Logger
	srv    *http.Server
	ln     net.Listener
}

// Listen binds addr and prepares a server for hub.
// A nil logger discards log output.
func Listen(addr string, hub *Hub, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("spectate: cannot listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle(Path, hub)

	return &Server{
		hub:    hub,
		logger: logger,
		ln:     ln,
		srv: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// URL returns the WebSocket URL viewers connect to.
func (s *Server) URL() string {
	return "ws://" + s.Addr() + Path
}

// Serve runs until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Spectator endpoint listening", "url", s.URL())
		if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("spectate: server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("spectate: shutdown failed: %w", err)
	}
	return nil
}
