package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// connStats receives client connection and toast delivery counts.
// The middleware package's Metrics satisfies it.
type connStats interface {
	ClientConnected()
	ClientDisconnected()
	ToastEmitted()
}

// event is the wire format for pushed events.
type event struct {
	Name string `json:"name"`
	Data any    `json:"data,omitempty"`
}

// Hub broadcasts events to all connected WebSocket clients. It
// implements toast.Emitter.
type Hub struct {
	config   *Config
	upgrader websocket.Upgrader
	logger   *slog.Logger
	stats    connStats

	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool
}

// NewHub creates a Hub with the given configuration.
func NewHub(config *Config, logger *slog.Logger) *Hub {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		logger:  logger.With("component", "hub"),
		clients: make(map[*client]struct{}),
	}
}

// SetStats attaches a connection stats sink. Must be called before the
// hub accepts connections.
func (h *Hub) SetStats(stats connStats) {
	h.stats = stats
}

// Emit marshals the event and broadcasts it to every connected client.
// Marshal failures are logged and dropped; clients that cannot keep up
// are disconnected.
func (h *Hub) Emit(name string, data any) {
	msg, err := json.Marshal(event{Name: name, Data: data})
	if err != nil {
		h.logger.Error("event marshal failed", "event", name, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// Slow client, drop it. The read loop unregisters it.
			go c.conn.Close()
		}
	}
	if h.stats != nil {
		h.stats.ToastEmitted()
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS upgrades the request to a WebSocket connection and attaches
// the client to the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, h.config.SendQueueSize),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	if h.stats != nil {
		h.stats.ClientConnected()
	}
	h.logger.Debug("client connected", "remote", conn.RemoteAddr().String())

	go c.writePump()
	go c.readPump()
}

// Close disconnects all clients and rejects new connections.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		c.conn.Close()
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
	}
	h.mu.Unlock()

	if ok && h.stats != nil {
		h.stats.ClientDisconnected()
	}
}

// client is one attached WebSocket connection.
type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// readPump drains inbound messages. Clients are receive-only; anything
// they send is discarded, but the read loop is required for pong and
// close handling.
func (c *client) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(c.hub.config.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.hub.config.PongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
				websocket.CloseAbnormalClosure) {
				c.hub.logger.Debug("read error", "error", err)
			}
			return
		}
	}
}

// writePump forwards queued messages to the connection and pings on an
// interval.
func (c *client) writePump() {
	ticker := time.NewTicker(c.hub.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.hub.config.WriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.hub.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
