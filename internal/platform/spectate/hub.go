// Package spectate streams match snapshots to read-only websocket viewers.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

const (
	writeWait   = 2 * time.Second
	sendBuffer  = 16
	readLimit   = 512
	shutdownMax = 5 * time.Second
)

// Format is the wire encoding chosen by a viewer with ?format=.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat returns the format for a query value. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatMsgpack:
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("spectate: unknown format %q", s)
	}
}

type viewer struct {
	id     string
	format Format
	conn   *websocket.Conn
	send   chan []byte
}

// Hub fans snapshots out to connected viewers. Publish never blocks: a
// viewer whose queue is full misses that snapshot.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *log.Logger

	mu      sync.Mutex
	viewers map[string]*viewer
	dropped uint64
}

// NewHub creates an empty hub. A nil logger discards output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger:  logger,
		viewers: make(map[string]*viewer),
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Dropped returns how many snapshots were skipped for slow viewers.
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Publish encodes snap once per format in use and queues it for every viewer.
func (h *Hub) Publish(snap pong.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.viewers) == 0 {
		return
	}

	encoded := make(map[Format][]byte, 2)
	for _, v := range h.viewers {
		data, ok := encoded[v.format]
		if !ok {
			var err error
			data, err = encode(v.format, snap)
			if err != nil {
				h.logger.Error("encode snapshot", "format", v.format, "error", err)
				return
			}
			encoded[v.format] = data
		}

		select {
		case v.send <- data:
		default:
			h.dropped++
		}
	}
}

func encode(f Format, snap pong.Snapshot) ([]byte, error) {
	if f == FormatMsgpack {
		return msgpack.Marshal(snap)
	}
	return json.Marshal(snap)
}

func (h *Hub) add(v *viewer) {
	h.mu.Lock()
	h.viewers[v.id] = v
	n := len(h.viewers)
	h.mu.Unlock()

	h.logger.Info("viewer connected", "viewer", v.id, "format", v.format, "viewers", n)
}

// remove unregisters a viewer and closes its queue. Safe to call twice.
func (h *Hub) remove(id string) {
	h.mu.Lock()
	v, ok := h.viewers[id]
	if ok {
		delete(h.viewers, id)
		close(v.send)
	}
	n := len(h.viewers)
	h.mu.Unlock()

	if ok {
		h.logger.Info("viewer disconnected", "viewer", id, "viewers", n)
	}
}

// Handler returns the HTTP routes: /ws for viewers and /healthz.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	mux.HandleFunc("/healthz", h.serveHealth)
	return mux
}

func (h *Hub) serveHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // Best-effort response
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"viewers": h.Viewers(),
	})
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	format, err := ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	v := &viewer{
		id:     uuid.NewString(),
		format: format,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
	}
	h.add(v)

	go h.writePump(v)
	h.readPump(v)
}

// readPump discards viewer messages until the connection closes.
func (h *Hub) readPump(v *viewer) {
	defer func() {
		h.remove(v.id)
		v.conn.Close()
	}()

	v.conn.SetReadLimit(readLimit)
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(v *viewer) {
	msgType := websocket.TextMessage
	if v.format == FormatMsgpack {
		msgType = websocket.BinaryMessage
	}

	for data := range v.send {
		v.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := v.conn.WriteMessage(msgType, data); err != nil {
			h.logger.Debug("write failed", "viewer", v.id, "error", err)
			v.conn.Close()
			return
		}
	}

	v.conn.SetWriteDeadline(time.Now().Add(writeWait))
	//nolint:errcheck // Best-effort close frame
	v.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// ListenAndServe serves the hub on addr until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("spectate: %w", err)
	}
	return h.Serve(ctx, ln)
}

// Serve serves the hub on ln until ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	h.logger.Info("spectator server listening", "address", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectate: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownMax)
	defer cancel()
	h.Close()
	return srv.Shutdown(shutdownCtx)
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	ids := make([]string, 0, len(h.viewers))
	for id := range h.viewers {
		ids = append(ids, id)
	}
	h.mu.Unlock()

	for _, id := range ids {
		h.remove(id)
	}
}
