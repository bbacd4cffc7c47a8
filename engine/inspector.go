package engine

import (
	"sort"

	"github.com/skilletworks/lunchrush/core"
)

// Inspector exposes a read-only view of the world for debugging and
// presentation layers. It walks the live entity table and the registered
// stores without mutating either.
type Inspector struct {
	world *World
}

// Inspect returns an Inspector bound to this world.
func (w *World) Inspect() *Inspector {
	return &Inspector{world: w}
}

// ComponentNames returns the sorted names of every store holding a row
// for the entity. A dead or stale handle yields an empty slice.
func (in *Inspector) ComponentNames(e core.Entity) []string {
	if !in.world.Alive(e) {
		return nil
	}
	names := make([]string, 0, 4)
	for _, store := range in.world.allStores {
		if store.Has(e) {
			names = append(names, store.Name())
		}
	}
	sort.Strings(names)
	return names
}

// EachEntity runs fn once for every live entity, in ID order.
func (in *Inspector) EachEntity(fn func(e core.Entity)) {
	for id, meta := range in.world.metas {
		if meta.live {
			fn(core.Entity{ID: uint32(id), Version: meta.version})
		}
	}
}

// EntityCount reports the number of live entities.
func (in *Inspector) EntityCount() int {
	return in.world.alive
}
