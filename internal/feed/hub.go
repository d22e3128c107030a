// Package feed broadcasts newly recorded price observations to websocket
// subscribers of the companion client.
package feed

import (
	"net/http"
	"sync"

	"price-tracker/internal/logger"
	"price-tracker/internal/models"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The companion client is served from other origins
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks connected subscribers and fans out price observations to them.
// Writes are serialized through the hub mutex; a client whose write fails is
// dropped.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	log     zerolog.Logger
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		log:     logger.WithComponent("feed"),
	}
}

// Subscribe upgrades the request to a websocket and registers the client.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.clients[conn] = true
	count := len(h.clients)
	h.mu.Unlock()
	h.log.Info().Int("clients", count).Msg("feed client connected")

	// Drain control frames until the client goes away
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove(conn)
				return
			}
		}
	}()
	return nil
}

// Broadcast sends a price observation to every connected client.
func (h *Hub) Broadcast(price *models.Price) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(price); err != nil {
			h.log.Debug().Err(err).Msg("dropping feed client")
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[conn] {
		conn.Close()
		delete(h.clients, conn)
	}
}
