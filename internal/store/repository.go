package store

import (
	"errors"
	"slices"
	"sync"
)

// ErrNotFound is returned when no entity has the requested id.
var ErrNotFound = errors.New("not found")

// Entity is implemented by values a Repository can store. Clone must return a
// copy sharing no mutable memory with the receiver.
type Entity[T any] interface {
	WithID(id int) T
	Clone() T
}

// Repository is an in-memory keyed collection with its own id sequence.
// Ids start at 1 and are never reused, even after deletion. Values cross the
// repository boundary as clones, so callers never alias stored entities.
type Repository[T Entity[T]] struct {
	mu     sync.RWMutex
	items  map[int]T
	order  []int
	nextID int
}

func NewRepository[T Entity[T]]() *Repository[T] {
	return &Repository[T]{
		items:  make(map[int]T),
		nextID: 1,
	}
}

// List returns every entity in insertion order.
func (r *Repository[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id].Clone())
	}
	return out
}

func (r *Repository[T]) Get(id int) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return item.Clone(), nil
}

// Create assigns the next id to input, stores it and returns the stored value.
func (r *Repository[T]) Create(input T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	item := input.Clone().WithID(id)
	r.items[id] = item
	r.order = append(r.order, id)
	return item.Clone()
}

// Update replaces the entity with mutate's result. The id is kept whatever
// mutate returns.
func (r *Repository[T]) Update(id int, mutate func(T) T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}

	updated := mutate(existing.Clone()).Clone().WithID(id)
	r.items[id] = updated
	return updated.Clone(), nil
}

// Delete removes the entity if present and reports whether it did. Deleting
// an unknown id is a no-op.
func (r *Repository[T]) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true
}

func (r *Repository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
