package socket

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// client wraps a connection with a write lock. gorilla/websocket allows at
// most one concurrent writer per connection, and refresh pushes fan out from
// mutation handlers on separate goroutines.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (cl *client) write(msg []byte) error {
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()
	return cl.conn.WriteMessage(websocket.TextMessage, msg)
}

// Hub tracks connected dashboard clients keyed by user id and pushes
// refreshed notification payloads to them after record mutations.
type Hub struct {
	clients map[uint]*client
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uint]*client)}
}

func (h *Hub) Register(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.clients[userID]; ok {
		old.conn.Close()
	}
	h.clients[userID] = &client{conn: conn}
	logrus.WithField("user_id", userID).Info("notification client registered")
}

func (h *Hub) Unregister(userID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[userID]; ok {
		delete(h.clients, userID)
		logrus.WithField("user_id", userID).Info("notification client unregistered")
	}
}

// Send delivers a JSON payload to one client. An offline client is not an
// error.
func (h *Hub) Send(userID uint, payload interface{}) error {
	h.mu.RLock()
	cl, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return nil
	}
	msg, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return cl.write(msg)
}

// Broadcast delivers a JSON payload to every connected client.
func (h *Hub) Broadcast(payload interface{}) {
	msg, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal broadcast payload")
		return
	}

	h.mu.RLock()
	targets := make(map[uint]*client, len(h.clients))
	for userID, cl := range h.clients {
		targets[userID] = cl
	}
	h.mu.RUnlock()

	for userID, cl := range targets {
		if err := cl.write(msg); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err,
			}).Warn("failed to push notification refresh")
		}
	}
}
