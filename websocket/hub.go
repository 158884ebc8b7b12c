package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client represents a connected admin dashboard
type Client struct {
	Hub    *Hub
	UserID uint
	Conn   *websocket.Conn
	Send   chan []byte
}

// Hub fans booking and order events out to every connected admin dashboard
type Hub struct {
	// Registered clients keyed by user ID
	Clients map[uint]*Client

	// Broadcast channel for events to all clients
	Broadcast chan *Event

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	mu sync.RWMutex
}

// Event is one dashboard notification
type Event struct {
	Type      string      `json:"type"` // e.g. "booking_created", "order_cancelled"
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[uint]*Client),
		Broadcast:  make(chan *Event, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			if existing, ok := h.Clients[client.UserID]; ok {
				close(existing.Send)
			}
			h.Clients[client.UserID] = client
			h.mu.Unlock()
			log.Printf("🔌 Admin dashboard connected: user %d", client.UserID)

		case client := <-h.Unregister:
			h.mu.Lock()
			if current, ok := h.Clients[client.UserID]; ok && current == client {
				delete(h.Clients, client.UserID)
				close(client.Send)
			}
			h.mu.Unlock()
			log.Printf("🔌 Admin dashboard disconnected: user %d", client.UserID)

		case event := <-h.Broadcast:
			h.broadcastEvent(event)
		}
	}
}

// broadcastEvent sends an event to all connected clients
func (h *Hub) broadcastEvent(event *Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Failed to marshal event %s: %v", event.Type, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.Clients {
		select {
		case client.Send <- payload:
		default:
			// Slow consumer, drop the event rather than block the hub
			log.Printf("⚠️ Dropping %s event for user %d: send buffer full", event.Type, client.UserID)
		}
	}
}

// Publish queues an event for broadcast without blocking the caller
func (h *Hub) Publish(eventType string, data interface{}) {
	event := &Event{Type: eventType, Data: data, Timestamp: time.Now()}
	select {
	case h.Broadcast <- event:
	default:
		log.Printf("⚠️ Event channel full, dropping %s event", eventType)
	}
}
