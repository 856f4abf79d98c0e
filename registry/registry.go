// Package registry provides insertion-ordered identity registries for the
// entities that take part in a simulation.
//
// A registry is an explicit context object. Constructors and decoders that
// need to enforce identifier uniqueness receive the registry they should
// register with, so independent simulations never share state.
package registry

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by lookup errors for unknown identifiers.
var ErrNotFound = errors.New("not found")

// ErrDuplicateID is wrapped by registration errors for identifiers that are
// already taken.
var ErrDuplicateID = errors.New("duplicate identifier")

// ErrNegativeID is wrapped by registration errors for negative identifiers.
var ErrNegativeID = errors.New("negative identifier")

// A Registry maps non-negative integer identifiers to entities and remembers
// the order in which entities were registered.
type Registry[E any] struct {
	entries map[int]E
	order   []int
}

// New creates an empty registry.
func New[E any]() *Registry[E] {
	return &Registry[E]{
		entries: make(map[int]E),
	}
}

// Register adds an entity under the given identifier. The identifier must be
// non-negative and not yet present in the registry.
func (r *Registry[E]) Register(id int, entity E) error {
	if id < 0 {
		return fmt.Errorf("cannot register id %d: %w", id, ErrNegativeID)
	}

	if _, ok := r.entries[id]; ok {
		return fmt.Errorf("cannot register id %d: %w", id, ErrDuplicateID)
	}

	r.entries[id] = entity
	r.order = append(r.order, id)

	return nil
}

// Lookup returns the entity registered under the given identifier.
func (r *Registry[E]) Lookup(id int) (E, error) {
	entity, ok := r.entries[id]
	if !ok {
		var zero E
		return zero, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}

	return entity, nil
}

// Exists reports whether an entity is registered under the given identifier.
func (r *Registry[E]) Exists(id int) bool {
	_, ok := r.entries[id]
	return ok
}

// All returns the registered entities in registration order. The returned
// slice is a copy.
func (r *Registry[E]) All() []E {
	all := make([]E, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.entries[id])
	}

	return all
}

// Len returns the number of registered entities.
func (r *Registry[E]) Len() int {
	return len(r.entries)
}

// Reset discards every entry, allowing identifiers to be reused. It exists
// for test isolation.
func (r *Registry[E]) Reset() {
	r.entries = make(map[int]E)
	r.order = nil
}
