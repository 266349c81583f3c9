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

type GroceryHandler struct {
	store     store.Storage
	validator *validation.Validator
	events    Publisher
	log       *slog.Logger
}

func NewGroceryHandler(s store.Storage, events Publisher, logger *slog.Logger) *GroceryHandler {
	return &GroceryHandler{
		store:     s,
		validator: validation.New(),
		events:    publisherOrNop(events),
		log:       logger,
	}
}

func (h *GroceryHandler) GetItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GroceryItems())
}

func (h *GroceryHandler) GetItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	item, err := h.store.GroceryItem(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		h.log.Error("get grocery item", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *GroceryHandler) CreateItem(c *gin.Context) {
	var req models.CreateGroceryItemRequest
	if !bindAndValidate(c, h.validator, h.log, &req) {
		return
	}

	item := h.store.CreateGroceryItem(req.GroceryItem())
	h.events.Publish(realtime.TopicGroceryItems, realtime.ActionCreated, item)

	c.JSON(http.StatusOK, item)
}

func (h *GroceryHandler) UpdateItem(c *gin.Context) {
	var req models.UpdateGroceryItemRequest
	if !bindAndValidate(c, h.validator, h.log, &req) {
		return
	}

	id, ok := paramID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	item, err := h.store.UpdateGroceryItem(id, req)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		h.log.Error("update grocery item", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}

	h.events.Publish(realtime.TopicGroceryItems, realtime.ActionUpdated, item)
	c.JSON(http.StatusOK, item)
}

// DeleteItem answers 204 whether or not the item existed.
func (h *GroceryHandler) DeleteItem(c *gin.Context) {
	if id, ok := paramID(c); ok && h.store.DeleteGroceryItem(id) {
		h.events.Publish(realtime.TopicGroceryItems, realtime.ActionDeleted, gin.H{"id": id})
	}

	c.Status(http.StatusNoContent)
}
