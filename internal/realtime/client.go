package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512
)

// Client message types
const (
	ClientMessageSubscribe   = "subscribe"
	ClientMessageUnsubscribe = "unsubscribe"
	ClientMessagePing        = "ping"
)

// ClientMessage represents incoming messages from clients
type ClientMessage struct {
	Type  string `json:"type"`
	Topic string `json:"topic,omitempty"`
}

// Client is one websocket connection. A client with no subscriptions
// receives every topic.
type Client struct {
	ID   string
	hub  *Hub
	conn *websocket.Conn
	send chan Message

	topics map[string]bool
	mu     sync.RWMutex
}

func (c *Client) subscribedTo(topic string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.topics) == 0 || c.topics[topic]
}

func (c *Client) subscribe(topic string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.topics[topic] = true
}

func (c *Client) unsubscribe(topic string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.topics, topic)
}

// readPump pumps messages from the websocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Warn("websocket read failed", "client", c.ID, "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.hub.log.Debug("ignoring malformed client message", "client", c.ID, "error", err)
			continue
		}
		c.handleClientMessage(msg)
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			message.Time = now()
			if err := c.conn.WriteJSON(message); err != nil {
				c.hub.log.Debug("websocket write failed", "client", c.ID, "error", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleClientMessage processes incoming messages from the client
func (c *Client) handleClientMessage(msg ClientMessage) {
	switch msg.Type {
	case ClientMessageSubscribe:
		if !knownTopic(msg.Topic) {
			return
		}
		c.subscribe(msg.Topic)
		c.hub.reply(c, Message{
			Type:  "subscribed",
			Topic: msg.Topic,
			Data:  map[string]any{"topic": msg.Topic, "status": "subscribed"},
		})

	case ClientMessageUnsubscribe:
		if !knownTopic(msg.Topic) {
			return
		}
		c.unsubscribe(msg.Topic)
		c.hub.reply(c, Message{
			Type:  "unsubscribed",
			Topic: msg.Topic,
			Data:  map[string]any{"topic": msg.Topic, "status": "unsubscribed"},
		})

	case ClientMessagePing:
		c.hub.reply(c, Message{
			Type: "pong",
			Data: map[string]any{"timestamp": now()},
		})

	default:
		c.hub.log.Debug("unknown client message type", "client", c.ID, "type", msg.Type)
	}
}

func knownTopic(topic string) bool {
	switch topic {
	case TopicGroceryItems, TopicRecipes, TopicShoppingList:
		return true
	}
	return false
}
