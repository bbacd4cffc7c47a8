package engine

import (
	"github.com/skilletworks/lunchrush/core"
	"github.com/skilletworks/lunchrush/event"
)

// System is the contract each simulation processor implements
// Update runs once per tick with the frame delta in seconds
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(dt float64)
}

// entityMeta tracks the lifecycle of one entity slot
type entityMeta struct {
	version uint32
	live    bool
}

// deferredRemoval is one buffered component removal
type deferredRemoval struct {
	store  AnyStore
	entity core.Entity
}

// World contains all entities and their components using typed stores
//
// Access is confined to a single goroutine: all mutation happens inside
// the facade's ProcessCommand and Update calls, so the stores carry no
// locks. The one iteration hazard that remains is a system removing a
// component from the entity it is currently visiting; DeferRemove
// buffers those removals and FlushDeferred applies them after the pass
type World struct {
	// Entity allocator: slot versions plus a free list for reuse
	metas []entityMeta
	free  []uint32
	alive int

	// Typed stores (public for direct system access)
	Components ComponentStore

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore

	// Removals buffered during the current update pass
	deferred []deferredRemoval

	// Direct pointers for the event emission path
	eventQueue *event.Queue
	tickSource *int64

	systems []System
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		metas:   make([]entityMeta, 0, 256),
		free:    make([]uint32, 0, 64),
		systems: make([]System, 0),
	}
	w.Components = newComponentStore()
	w.allStores = w.Components.all()
	return w
}

// CreateEntity reserves a new entity handle
// Destroyed slots are recycled with a bumped version, so the returned
// handle never aliases a previously destroyed entity
func (w *World) CreateEntity() core.Entity {
	if n := len(w.free); n > 0 {
		id := w.free[n-1]
		w.free = w.free[:n-1]
		m := &w.metas[id]
		m.version++
		m.live = true
		w.alive++
		return core.Entity{ID: id, Version: m.version}
	}

	id := uint32(len(w.metas))
	w.metas = append(w.metas, entityMeta{version: 1, live: true})
	w.alive++
	return core.Entity{ID: id, Version: 1}
}

// DestroyEntity removes all components associated with an entity and
// retires the handle; stale handles are ignored
func (w *World) DestroyEntity(e core.Entity) {
	if !w.Alive(e) {
		return
	}
	for _, store := range w.allStores {
		store.Remove(e)
	}
	m := &w.metas[e.ID]
	m.live = false
	w.free = append(w.free, e.ID)
	w.alive--
}

// Alive reports whether e refers to a currently live entity
func (w *World) Alive(e core.Entity) bool {
	if int(e.ID) >= len(w.metas) {
		return false
	}
	m := w.metas[e.ID]
	return m.live && m.version == e.Version
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.alive
}

// Clear removes all entities and components from the world
// Systems stay registered; the next tick runs against an empty kitchen
func (w *World) Clear() {
	w.metas = w.metas[:0]
	w.free = w.free[:0]
	w.alive = 0
	w.deferred = w.deferred[:0]
	for _, store := range w.allStores {
		store.Clear()
	}
}

// DeferRemove buffers a component removal until the current update pass
// completes. Systems must use it for the entity they are iterating,
// since mutating the active row's membership mid-pass is not allowed
func (w *World) DeferRemove(store AnyStore, e core.Entity) {
	w.deferred = append(w.deferred, deferredRemoval{store: store, entity: e})
}

// FlushDeferred applies buffered removals in order and empties the buffer
func (w *World) FlushDeferred() {
	for _, d := range w.deferred {
		d.store.Remove(d.entity)
	}
	w.deferred = w.deferred[:0]
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially in priority order, flushing
// deferred removals after each system's pass
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(dt)
		w.FlushDeferred()
	}
}

// SetEventMetadata wires the direct pointers for PushEvent
// Called once during facade initialization
func (w *World) SetEventMetadata(q *event.Queue, tick *int64) {
	w.eventQueue = q
	w.tickSource = tick
}

// PushEvent emits a simulation event using the cached queue pointer
// This is the hot path for all outbound system communication
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil {
		return // Not yet wired
	}

	var tick int64
	if w.tickSource != nil {
		tick = *w.tickSource
	}
	w.eventQueue.Push(event.KitchenEvent{
		Type:    eventType,
		Payload: payload,
		Tick:    tick,
	})
}
