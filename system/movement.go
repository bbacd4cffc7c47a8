package system

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/skilletworks/lunchrush/component"
	"github.com/skilletworks/lunchrush/core"
	"github.com/skilletworks/lunchrush/engine"
	"github.com/skilletworks/lunchrush/parameter"
	"github.com/skilletworks/lunchrush/status"
)

// MovementSystem integrates velocity into position
type MovementSystem struct {
	world *engine.World
	log   *zap.Logger

	position *engine.Store[component.PositionComponent]
	velocity *engine.Store[component.VelocityComponent]

	statMoving *atomic.Int64
}

func NewMovementSystem(world *engine.World, log *zap.Logger, st *status.Registry) *MovementSystem {
	return &MovementSystem{
		world:      world,
		log:        log.Named("movement"),
		position:   world.Components.Position,
		velocity:   world.Components.Velocity,
		statMoving: st.Ints.Get("move.moving"),
	}
}

// Name returns system's name
func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update advances every positioned entity by its velocity
// Entities missing either component are skipped; no clamping, no events
func (s *MovementSystem) Update(dt float64) {
	entities := s.velocity.All()
	moving := 0

	for _, entity := range entities {
		vel, ok := s.velocity.Get(entity)
		if !ok {
			continue
		}
		pos, ok := s.position.Get(entity)
		if !ok {
			continue
		}

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		s.position.Set(entity, pos)
		moving++
	}

	s.statMoving.Store(int64(moving))
}

// SetVelocity records an entity's velocity; stale handles are ignored
func (s *MovementSystem) SetVelocity(entity core.Entity, v core.Vec2) {
	if !s.world.Alive(entity) {
		return
	}
	s.velocity.Set(entity, component.VelocityComponent{X: v.X, Y: v.Y})
}

// SetPosition places an entity directly; stale handles are ignored
func (s *MovementSystem) SetPosition(entity core.Entity, p core.Vec2) {
	if !s.world.Alive(entity) {
		return
	}
	s.position.Set(entity, component.PositionComponent{X: p.X, Y: p.Y})
}
