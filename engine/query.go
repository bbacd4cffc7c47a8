package engine

import (
	"sort"

	"github.com/skilletworks/lunchrush/core"
)

// QueryBuilder provides a fluent interface for querying entities based on component intersection.
// It uses the sparse set pattern from stores to efficiently find entities that have all specified components.
// The query optimizes by starting with the smallest store and filtering through larger ones.
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific component combinations.
// Use With() to add component filters, then Execute() or Each() to consume the results.
//
// Example:
//
//	entities := world.Query().
//	    With(world.Components.Position).
//	    With(world.Components.Velocity).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4), // Pre-allocate for common case
	}
}

// With adds a component store to the query filter.
// The resulting query will only return entities that have components in ALL specified stores.
// Returns the QueryBuilder for method chaining.
//
// Panics if called after Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute runs the query and returns all entities that have components in all specified stores.
// The result is a snapshot: adding or removing components afterwards does
// not change the returned slice. Calling Execute() again returns the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	// Empty query returns no results
	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Single store: All() already returns a copy
	if len(qb.stores) == 1 {
		qb.results = qb.stores[0].All()
		return qb.results
	}

	// Sort stores by count (ascending) for optimal intersection performance
	// Starting with the smallest store minimizes the number of Has() checks
	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	// Start with smallest store as initial candidates
	candidates := qb.stores[0].All()

	// Filter candidates through remaining stores, reusing the slice
	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered

		// Early exit if no candidates remain
		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}

// Each runs fn once for every matching entity over the snapshot taken
// by Execute. fn may add or remove components for other entities freely;
// removals targeting the entity it was handed must go through
// World.DeferRemove
func (qb *QueryBuilder) Each(fn func(e core.Entity)) {
	for _, e := range qb.Execute() {
		fn(e)
	}
}
