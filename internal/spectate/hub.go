// Package spectate streams game snapshots to read-only viewers over WebSocket.
// The game loop publishes one snapshot per frame; every connected viewer gets
// its own buffered queue so a slow viewer never stalls the game.
package spectate

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/pongspire/internal/core"
)

// DefaultQueueSize is the number of frames buffered per viewer.
const DefaultQueueSize = 16

const writeWait = 2 * time.Second

// Hub fans snapshots out to connected viewers. It implements http.Handler
// for the WebSocket endpoint.
type Hub struct {
	logger    *log.Logger
	upgrader  websocket.Upgrader
	queueSize int

	mu      sync.RWMutex
	viewers map[*viewer]struct{}
	last    []byte // Most recent encoded snapshot, sent on join
	closed  bool
}

// NewHub creates a hub. A nil logger discards log output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		logger:    logger,
		queueSize: DefaultQueueSize,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		viewers: make(map[*viewer]struct{}),
	}
}

// Publish encodes snap once and queues it for every viewer.
func (h *Hub) Publish(snap core.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		h.logger.Error("Cannot encode snapshot", "error", err)
		return
	}

	h.mu.Lock()
	h.last = data
	viewers := make([]*viewer, 0, len(h.viewers))
	for v := range h.viewers {
		viewers = append(viewers, v)
	}
	h.mu.Unlock()

	for _, v := range viewers {
		v.send(data)
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// ServeHTTP upgrades the request and streams snapshots until the viewer leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Cannot upgrade to websocket", "remote", r.RemoteAddr, "error", err)
		return
	}

	v := newViewer(h.queueSize)
	if !h.join(v) {
		conn.Close()
		return
	}
	h.logger.Info("Viewer joined", "remote", r.RemoteAddr, "viewers", h.Viewers())

	go v.writeLoop(conn)

	// Viewers never send; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.leave(v)
	conn.Close()
	h.logger.Info("Viewer left", "remote", r.RemoteAddr, "viewers", h.Viewers())
}

func (h *Hub) join(v *viewer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.viewers[v] = struct{}{}
	if h.last != nil {
		v.send(h.last)
	}
	return true
}

func (h *Hub) leave(v *viewer) {
	h.mu.Lock()
	delete(h.viewers, v)
	h.mu.Unlock()
	v.close()
}

// Close disconnects every viewer and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	viewers := h.viewers
	h.viewers = make(map[*viewer]struct{})
	h.mu.Unlock()

	for v := range viewers {
		v.close()
	}
}

// viewer is one connected spectator.
type viewer struct {
	queue    chan []byte
	done     chan struct{}
	doneOnce sync.Once
}

func newViewer(size int) *viewer {
	if size < 1 {
		size = DefaultQueueSize
	}
	return &viewer{
		queue: make(chan []byte, size),
		done:  make(chan struct{}),
	}
}

// send queues a frame without blocking.
// If the queue is full the oldest frame is dropped.
func (v *viewer) send(data []byte) {
	select {
	case <-v.done:
		return
	default:
	}

	select {
	case v.queue <- data:
	default:
		select {
		case <-v.queue:
		default:
		}
		select {
		case v.queue <- data:
		default:
		}
	}
}

func (v *viewer) close() {
	v.doneOnce.Do(func() {
		close(v.done)
	})
}

// writeLoop drains the queue onto the connection until the viewer is closed.
func (v *viewer) writeLoop(conn *websocket.Conn) {
	defer conn.Close()
	for {
		select {
		case <-v.done:
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case data := <-v.queue:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				v.close()
				return
			}
		}
	}
}
