package bridge

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"SimpleWhiteboard/internal/notify"
)

type client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub relays completion notifications to embedding hosts connected over
// WebSocket. It implements notify.Forwarder.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*client
	upgrader websocket.Upgrader
}

var _ notify.Forwarder = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.id] = c
	log.Printf("Added bridge client %s (%s)", c.id, c.conn.RemoteAddr())
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[id]; ok {
		delete(h.clients, id)
		log.Printf("Removed bridge client %s", id)
	}
}

// ClientCount reports the number of connected hosts.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Handler returns the HTTP handler host integrations connect to.
func (h *Hub) Handler() http.Handler {
	return http.HandlerFunc(h.serveWS)
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Bridge upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	c := &client{id: uuid.NewString(), conn: conn}
	h.add(c)
	go h.readLoop(c)
}

// readLoop only watches for closure; no inbound messages are consumed.
func (h *Hub) readLoop(c *client) {
	defer func() {
		h.remove(c.id)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Forward broadcasts one completion message to every connected host.
// Clients that fail to accept the write are dropped.
func (h *Hub) Forward(msg notify.Completion) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Bridge marshal failed: %v", err)
		return
	}

	h.mu.RLock()
	snapshot := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		snapshot = append(snapshot, c)
	}
	h.mu.RUnlock()

	for _, c := range snapshot {
		if err := c.send(data); err != nil {
			log.Printf("Error sending to bridge client %s: %v", c.id, err)
			h.remove(c.id)
			c.conn.Close()
		}
	}
}

// Start serves the bridge endpoint on the given port and blocks; run it in
// a goroutine.
func (h *Hub) Start(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/events", h.Handler())
	addr := fmt.Sprintf(":%d", port)
	log.Printf("Bridge listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("bridge listen on %s: %w", addr, err)
	}
	return nil
}
