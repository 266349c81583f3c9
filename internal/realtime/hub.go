// Package realtime pushes store change events to connected browser clients
// over websockets.
package realtime

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Topics, one per REST resource.
const (
	TopicGroceryItems = "grocery-items"
	TopicRecipes      = "recipes"
	TopicShoppingList = "shopping-list"
)

// Change actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

const broadcastBuffer = 256

// Message is the frame written to clients. Type is "<topic>.<action>" for
// change events and a bare reply name (pong, subscribed) otherwise.
type Message struct {
	Type  string `json:"type"`
	Topic string `json:"topic,omitempty"`
	Data  any    `json:"data"`
	Time  int64  `json:"time"`
}

type directMessage struct {
	client  *Client
	message Message
}

// Hub maintains the set of active clients and fans out change events.
// Only the Run goroutine sends on or closes a client's send channel.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Message
	direct     chan directMessage
	done       chan struct{}

	count int
	mu    sync.RWMutex

	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewHub creates a hub. Browsers connecting from an origin outside
// allowedOrigins are rejected; requests without an Origin header are accepted.
func NewHub(logger *slog.Logger, allowedOrigins []string) *Hub {
	h := &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message, broadcastBuffer),
		direct:     make(chan directMessage, broadcastBuffer),
		done:       make(chan struct{}),
		log:        logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(allowedOrigins, origin)
		},
	}
	return h
}

// Run starts the hub's main loop and blocks until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.removeClient(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			h.setCount(len(h.clients))
			h.log.Debug("websocket client registered", "client", client.ID, "clients", len(h.clients))

		case client := <-h.unregister:
			if h.clients[client] {
				h.removeClient(client)
				h.log.Debug("websocket client unregistered", "client", client.ID, "clients", len(h.clients))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				if client.subscribedTo(message.Topic) {
					h.deliver(client, message)
				}
			}

		case dm := <-h.direct:
			if h.clients[dm.client] {
				h.deliver(dm.client, dm.message)
			}
		}
	}
}

// deliver queues message for client, dropping clients that cannot keep up.
func (h *Hub) deliver(client *Client, message Message) {
	select {
	case client.send <- message:
	default:
		h.log.Warn("dropping slow websocket client", "client", client.ID)
		h.removeClient(client)
	}
}

func (h *Hub) removeClient(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.setCount(len(h.clients))
}

func (h *Hub) setCount(n int) {
	h.mu.Lock()
	h.count = n
	h.mu.Unlock()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Publish queues a change event for every client subscribed to topic. It never
// blocks; events are dropped when the queue is full or the hub has stopped.
func (h *Hub) Publish(topic, action string, data any) {
	message := Message{
		Type:  topic + "." + action,
		Topic: topic,
		Data:  data,
	}

	select {
	case <-h.done:
		return
	default:
	}

	select {
	case h.broadcast <- message:
	default:
		h.log.Warn("realtime queue full, dropping event", "type", message.Type)
	}
}

// reply sends message to a single client through the hub goroutine.
func (h *Hub) reply(client *Client, message Message) {
	select {
	case h.direct <- directMessage{client: client, message: message}:
	case <-h.done:
	}
}

// ServeWS upgrades the request to a websocket and registers the client.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error response.
		h.log.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		ID:     uuid.NewString(),
		hub:    h,
		conn:   conn,
		send:   make(chan Message, broadcastBuffer),
		topics: make(map[string]bool),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func now() int64 {
	return time.Now().Unix()
}
