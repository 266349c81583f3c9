package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grocery-app/internal/realtime"
)

type WebSocketHandler struct {
	hub *realtime.Hub
}

func NewWebSocketHandler(hub *realtime.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// HandleWebSocket upgrades HTTP connection to WebSocket
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	h.hub.ServeWS(c)
}

// GetStatus reports how many websocket clients are connected
func (h *WebSocketHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"clients": h.hub.ClientCount(),
	})
}
