// Package store keeps every grocery item, recipe and shopping item in memory.
// Nothing survives a restart; the sample recipes are seeded again on boot.
package store

import (
	"grocery-app/internal/models"
)

// Storage is what the HTTP handlers need from a store.
type Storage interface {
	GroceryItems() []models.GroceryItem
	GroceryItem(id int) (models.GroceryItem, error)
	CreateGroceryItem(item models.GroceryItem) models.GroceryItem
	UpdateGroceryItem(id int, patch models.UpdateGroceryItemRequest) (models.GroceryItem, error)
	// DeleteGroceryItem reports whether an item was removed.
	DeleteGroceryItem(id int) bool

	Recipes() []models.Recipe
	Recipe(id int) (models.Recipe, error)
	CreateRecipe(recipe models.InsertRecipe) models.Recipe

	ShoppingList() []models.ShoppingItem
	ShoppingItem(id int) (models.ShoppingItem, error)
	CreateShoppingItem(item models.ShoppingItem) models.ShoppingItem
	UpdateShoppingItem(id int, patch models.UpdateShoppingItemRequest) (models.ShoppingItem, error)
	DeleteShoppingItem(id int) bool
}

type MemStore struct {
	groceryItems  *Repository[models.GroceryItem]
	recipes       *Repository[models.Recipe]
	shoppingItems *Repository[models.ShoppingItem]
}

var _ Storage = (*MemStore)(nil)

type options struct {
	seedRecipes []models.InsertRecipe
}

type Option func(*options)

// WithSeedRecipes replaces the built-in sample recipes. An empty slice seeds
// nothing.
func WithSeedRecipes(recipes []models.InsertRecipe) Option {
	return func(o *options) {
		o.seedRecipes = recipes
	}
}

func NewMemStore(opts ...Option) *MemStore {
	o := options{seedRecipes: models.SampleRecipes()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &MemStore{
		groceryItems:  NewRepository[models.GroceryItem](),
		recipes:       NewRepository[models.Recipe](),
		shoppingItems: NewRepository[models.ShoppingItem](),
	}
	for _, r := range o.seedRecipes {
		s.CreateRecipe(r)
	}
	return s
}

// Grocery items

func (s *MemStore) GroceryItems() []models.GroceryItem {
	return s.groceryItems.List()
}

func (s *MemStore) GroceryItem(id int) (models.GroceryItem, error) {
	return s.groceryItems.Get(id)
}

func (s *MemStore) CreateGroceryItem(item models.GroceryItem) models.GroceryItem {
	return s.groceryItems.Create(item)
}

func (s *MemStore) UpdateGroceryItem(id int, patch models.UpdateGroceryItemRequest) (models.GroceryItem, error) {
	return s.groceryItems.Update(id, patch.Apply)
}

func (s *MemStore) DeleteGroceryItem(id int) bool {
	return s.groceryItems.Delete(id)
}

// Recipes

func (s *MemStore) Recipes() []models.Recipe {
	return s.recipes.List()
}

func (s *MemStore) Recipe(id int) (models.Recipe, error) {
	return s.recipes.Get(id)
}

func (s *MemStore) CreateRecipe(recipe models.InsertRecipe) models.Recipe {
	return s.recipes.Create(recipe.Recipe())
}

// Shopping list

func (s *MemStore) ShoppingList() []models.ShoppingItem {
	return s.shoppingItems.List()
}

func (s *MemStore) ShoppingItem(id int) (models.ShoppingItem, error) {
	return s.shoppingItems.Get(id)
}

func (s *MemStore) CreateShoppingItem(item models.ShoppingItem) models.ShoppingItem {
	return s.shoppingItems.Create(item)
}

func (s *MemStore) UpdateShoppingItem(id int, patch models.UpdateShoppingItemRequest) (models.ShoppingItem, error) {
	return s.shoppingItems.Update(id, patch.Apply)
}

func (s *MemStore) DeleteShoppingItem(id int) bool {
	return s.shoppingItems.Delete(id)
}
