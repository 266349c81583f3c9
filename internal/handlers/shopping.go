package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"grocery-app/internal/models"
	"grocery-app/internal/realtime"
	"grocery-app/internal/store"
	"grocery-app/internal/validation"
)

type ShoppingHandler struct {
	store     store.Storage
	validator *validation.Validator
	events    Publisher
	log       *slog.Logger
}

func NewShoppingHandler(s store.Storage, events Publisher, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{
		store:     s,
		validator: validation.New(),
		events:    publisherOrNop(events),
		log:       logger,
	}
}

// GetItems returns the list in insertion order; the client sorts purchased
// items to the bottom.
func (h *ShoppingHandler) GetItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ShoppingList())
}

func (h *ShoppingHandler) CreateItem(c *gin.Context) {
	var req models.CreateShoppingItemRequest
	if !bindAndValidate(c, h.validator, h.log, &req) {
		return
	}

	item := h.store.CreateShoppingItem(req.ShoppingItem())
	h.events.Publish(realtime.TopicShoppingList, realtime.ActionCreated, item)

	c.JSON(http.StatusOK, item)
}

func (h *ShoppingHandler) UpdateItem(c *gin.Context) {
	var req models.UpdateShoppingItemRequest
	if !bindAndValidate(c, h.validator, h.log, &req) {
		return
	}

	id, ok := paramID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	item, err := h.store.UpdateShoppingItem(id, req)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		h.log.Error("update shopping item", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}

	h.events.Publish(realtime.TopicShoppingList, realtime.ActionUpdated, item)
	c.JSON(http.StatusOK, item)
}

func (h *ShoppingHandler) DeleteItem(c *gin.Context) {
	if id, ok := paramID(c); ok && h.store.DeleteShoppingItem(id) {
		h.events.Publish(realtime.TopicShoppingList, realtime.ActionDeleted, gin.H{"id": id})
	}

	c.Status(http.StatusNoContent)
}
