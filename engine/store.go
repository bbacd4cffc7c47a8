package engine

import (
	"fmt"
	"sort"

	"github.com/skilletworks/lunchrush/core"
	"github.com/skilletworks/lunchrush/parameter"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern for cache-friendly iteration: a map for O(1)
// lookup plus a dense entity slice for ordered traversal.
// Access is confined to the simulation goroutine; see World
type Store[T any] struct {
	name       string
	components map[core.Entity]T
	entities   []core.Entity // Entities that have this component, insertion order
}

// NewStore creates a new component store for type T
// name identifies the component in Inspector listings and state digests
func NewStore[T any](name string) *Store[T] {
	return &Store[T]{
		name:       name,
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, parameter.StoreCapacity),
	}
}

// Name returns the component name the store was registered under
func (s *Store[T]) Name() string {
	return s.name
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Remove deletes a component from an entity
// Must not target the row currently under iteration; use
// World.DeferRemove inside an update pass instead
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e]; exists {
		delete(s.components, e)
		// Swap-remove from the dense entity slice
		for i, entity := range s.entities {
			if entity == e {
				s.entities[i] = s.entities[len(s.entities)-1]
				s.entities = s.entities[:len(s.entities)-1]
				break
			}
		}
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// All returns all entities with this component type
// Returns a copy so systems can mutate membership while ranging over it
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, parameter.StoreCapacity)
}

// DumpState renders every row in (ID, Version) order
// The rendering is canonical: equal store contents produce equal dumps
// regardless of insertion order. Used by World.Digest
func (s *Store[T]) DumpState(fn func(e core.Entity, repr string)) {
	if len(s.entities) == 0 {
		return
	}
	ordered := make([]core.Entity, len(s.entities))
	copy(ordered, s.entities)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].ID != ordered[j].ID {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].Version < ordered[j].Version
	})
	for _, e := range ordered {
		fn(e, fmt.Sprintf("%+v", s.components[e]))
	}
}
