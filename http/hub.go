package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fwojciec/readlog"
	readlogjson "github.com/fwojciec/readlog/json"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 512
	sendBuffer     = 256
)

// message is the wire format of a pushed event.
type message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type deletedPayload struct {
	ID int `json:"id"`
}

// Hub fans events out to connected WebSocket clients. Clients only listen;
// anything they send is discarded. A client whose send buffer is full is
// dropped rather than allowed to stall publishers.
type Hub struct {
	logger   *slog.Logger
	gauge    prometheus.Gauge
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub returns a hub that reports its client count to gauge.
func NewHub(logger *slog.Logger, gauge prometheus.Gauge) *Hub {
	return &Hub{
		logger: logger,
		gauge:  gauge,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true // the server is reached from LAN devices by IP
			},
		},
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the connection and blocks until the client disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.add(c)
	go h.writePump(c)
	h.readPump(c)
}

// Publish sends e to every connected client.
func (h *Hub) Publish(e readlog.Event) {
	data, err := json.Marshal(message{Type: e.Type(), Payload: payload(e)})
	if err != nil {
		h.logger.Error("marshal event", "type", e.Type(), "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("dropping slow websocket client", "remote", c.conn.RemoteAddr().String())
			h.removeLocked(c)
		}
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.removeLocked(c)
	}
}

func payload(e readlog.Event) any {
	switch e := e.(type) {
	case readlog.EventBookCreated:
		return readlogjson.NewBook(e.Book)
	case readlog.EventBookUpdated:
		return readlogjson.NewBook(e.Book)
	case readlog.EventBookDeleted:
		return deletedPayload{ID: e.ID}
	default:
		return nil
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.gauge.Set(float64(n))
	h.logger.Info("websocket client connected", "remote", c.conn.RemoteAddr().String(), "clients", n)
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

// removeLocked closes the client's send channel, which makes its write pump
// send a close frame and exit. Callers hold mu.
func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.gauge.Set(float64(len(h.clients)))
	h.logger.Info("websocket client disconnected", "remote", c.conn.RemoteAddr().String(), "clients", len(h.clients))
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("websocket read failed", "err", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
