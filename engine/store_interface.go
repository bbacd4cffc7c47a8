package engine

import (
	"github.com/skilletworks/lunchrush/core"
)

// AnyStore provides type-erased operations for lifecycle management
// This interface allows World to manage all stores uniformly for entity
// destruction, clearing, and state digests without knowing the
// concrete component type
type AnyStore interface {
	// Name returns the component name used in diagnostics and digests
	Name() string

	// Remove deletes a component from an entity
	Remove(e core.Entity)

	// Has checks if an entity has this component
	Has(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	// Clear removes all components from this store
	Clear()

	// DumpState renders each row in canonical order for digesting
	DumpState(fn func(e core.Entity, repr string))
}

// QueryableStore extends AnyStore with the iteration surface the query
// builder needs to intersect component sets
type QueryableStore interface {
	AnyStore

	// All returns all entities that have this component type
	All() []core.Entity
}
