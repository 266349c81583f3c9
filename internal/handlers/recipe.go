package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"grocery-app/internal/store"
)

// RecipeHandler serves the read-only recipe catalogue.
type RecipeHandler struct {
	store store.Storage
	log   *slog.Logger
}

func NewRecipeHandler(s store.Storage, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{store: s, log: logger}
}

func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Recipes())
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	recipe, err := h.store.Recipe(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if err != nil {
		h.log.Error("get recipe", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}

	c.JSON(http.StatusOK, recipe)
}
