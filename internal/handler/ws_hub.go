package handler

import (
	"net/http"
	"sync"

	"github.com/NAPONYAHASINE/journal/internal/middleware"
	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsClient wraps one connection. The websocket library permits at most one
// concurrent writer per connection, so every write goes through the mutex.
type wsClient struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *wsClient) writeJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

// WSHub pushes stored notifications to users' live websocket connections.
// A user may hold several connections at once; delivery is best effort and
// a failed write drops the connection.
type WSHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*wsClient]bool
}

// NewWSHub creates a new WSHub
func NewWSHub() *WSHub {
	return &WSHub{
		clients: make(map[uint]map[*wsClient]bool),
	}
}

// Push implements service.Pusher
func (h *WSHub) Push(userID uint, notification *models.Notification) {
	h.mu.RLock()
	clients := make([]*wsClient, 0, len(h.clients[userID]))
	for client := range h.clients[userID] {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := client.writeJSON(notification); err != nil {
			h.remove(userID, client)
			client.conn.Close()
			middleware.LogError("websocket push to user %d failed: %v", userID, err)
		}
	}
}

func (h *WSHub) add(userID uint, conn *websocket.Conn) *wsClient {
	client := &wsClient{conn: conn}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*wsClient]bool)
	}
	h.clients[userID][client] = true
	return client
}

func (h *WSHub) remove(userID uint, client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[userID], client)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}
