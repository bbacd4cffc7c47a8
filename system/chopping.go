package system

import (
	"math"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/skilletworks/lunchrush/component"
	"github.com/skilletworks/lunchrush/core"
	"github.com/skilletworks/lunchrush/engine"
	"github.com/skilletworks/lunchrush/event"
	"github.com/skilletworks/lunchrush/fmath"
	"github.com/skilletworks/lunchrush/parameter"
	"github.com/skilletworks/lunchrush/status"
)

// ChoppingSystem owns timed ingredient preparation and the knife wear
// each completed chop inflicts
type ChoppingSystem struct {
	world *engine.World
	log   *zap.Logger

	ingredient *engine.Store[component.IngredientComponent]
	choppable  *engine.Store[component.ChoppableItemComponent]
	chopping   *engine.Store[component.ChoppingProgressComponent]
	sharpness  *engine.Store[component.SharpnessComponent]

	statActive    *atomic.Int64
	statCompleted *atomic.Int64
}

func NewChoppingSystem(world *engine.World, log *zap.Logger, st *status.Registry) *ChoppingSystem {
	return &ChoppingSystem{
		world:         world,
		log:           log.Named("chopping"),
		ingredient:    world.Components.Ingredient,
		choppable:     world.Components.Choppable,
		chopping:      world.Components.Chopping,
		sharpness:     world.Components.Sharpness,
		statActive:    st.Ints.Get("chop.active"),
		statCompleted: st.Ints.Get("chop.completed"),
	}
}

// Name returns system's name
func (s *ChoppingSystem) Name() string {
	return "chopping"
}

func (s *ChoppingSystem) Priority() int {
	return parameter.PriorityChopping
}

// Update advances every in-flight chop
func (s *ChoppingSystem) Update(dt float64) {
	entities := s.chopping.All()
	active := 0

	for _, entity := range entities {
		job, ok := s.chopping.Get(entity)
		if !ok {
			continue
		}

		job.Elapsed += dt

		// A non-positive duration counts as instantly done
		progress := 1.0
		if job.ChopDuration > 0 {
			progress = fmath.Clamp01(job.Elapsed / job.ChopDuration)
		}
		s.world.PushEvent(event.EventChoppingProgress, &event.ChoppingProgressPayload{
			Ingredient: entity,
			Progress:   progress,
		})

		if fmath.AtLeast(job.Elapsed, job.ChopDuration) {
			s.completeChop(entity, job)
			continue
		}

		s.chopping.Set(entity, job)
		active++
	}

	s.statActive.Store(int64(active))
}

// completeChop lands one chop: credit it, wear the knife, refresh the
// prepared flag and emit the milestone events in order
func (s *ChoppingSystem) completeChop(entity core.Entity, job component.ChoppingProgressComponent) {
	item, ok := s.choppable.Get(entity)
	if !ok {
		// Choppable state vanished mid-chop; nothing to credit
		s.world.DeferRemove(s.chopping, entity)
		return
	}

	if item.Chops < item.RequiredChops {
		item.Chops++
	}
	item.FullyChopped = item.Chops >= item.RequiredChops
	s.choppable.Set(entity, item)

	s.degradeKnife(job.Knife, entity)

	s.world.PushEvent(event.EventIngredientChopped, &event.IngredientChoppedPayload{
		Ingredient:   entity,
		Chops:        item.Chops,
		FullyChopped: item.FullyChopped,
	})
	if item.FullyChopped {
		s.world.PushEvent(event.EventIngredientFullyPrepared, &event.IngredientFullyPreparedPayload{
			Ingredient: entity,
		})
		s.log.Debug("ingredient fully prepared",
			zap.Uint32("ingredient", entity.ID),
			zap.Int("chops", item.Chops))
	}

	s.world.DeferRemove(s.chopping, entity)
	s.statCompleted.Add(1)
}

// degradeKnife applies chop wear to the knife that landed the cut
// Skipped when the knife is gone or the ingredient does not wear blades
func (s *ChoppingSystem) degradeKnife(knife core.Entity, ingredientEntity core.Entity) {
	if !s.world.Alive(knife) {
		return
	}
	sharp, ok := s.sharpness.Get(knife)
	if !ok {
		return
	}
	ing, ok := s.ingredient.Get(ingredientEntity)
	if !ok {
		return
	}
	if ing.Degradation <= 0 {
		return
	}

	sharp.Level = math.Max(sharp.Level-ing.Degradation, 0)
	s.sharpness.Set(knife, sharp)

	s.world.PushEvent(event.EventKnifeDegraded, &event.KnifeDegradedPayload{
		Knife:  knife,
		Level:  sharp.Level,
		Amount: ing.Degradation,
	})
}

// StartChopping begins a chop on an ingredient using the given knife
// Duration shortens with knife sharpness down to a speed floor that keeps
// a fully dull blade making progress
// Ignored when the ingredient is not choppable, already mid-chop or fully
// chopped, or the knife has no blade
func (s *ChoppingSystem) StartChopping(ingredientEntity, knife core.Entity) {
	if !s.world.Alive(ingredientEntity) || !s.world.Alive(knife) {
		return
	}
	ing, ok := s.ingredient.Get(ingredientEntity)
	if !ok {
		return
	}
	item, ok := s.choppable.Get(ingredientEntity)
	if !ok {
		return
	}
	if item.FullyChopped {
		return
	}
	if s.chopping.Has(ingredientEntity) {
		return
	}
	sharp, ok := s.sharpness.Get(knife)
	if !ok {
		return
	}

	duration := ing.BaseChopTime / (parameter.ChopSpeedFloor + math.Max(sharp.Level, 0)*parameter.ChopSpeedSlope)
	s.chopping.Set(ingredientEntity, component.ChoppingProgressComponent{
		Knife:        knife,
		Elapsed:      0,
		ChopDuration: duration,
	})

	s.world.PushEvent(event.EventChoppingStarted, &event.ChoppingStartedPayload{
		Ingredient: ingredientEntity,
		Knife:      knife,
		Duration:   duration,
	})
	s.log.Debug("chopping started",
		zap.Uint32("ingredient", ingredientEntity.ID),
		zap.Uint32("knife", knife.ID),
		zap.Float64("duration", duration))
}

// CancelChopping abandons an in-flight chop
// No chop is credited and the knife keeps its edge
func (s *ChoppingSystem) CancelChopping(ingredientEntity core.Entity) {
	job, ok := s.chopping.Get(ingredientEntity)
	if !ok {
		return
	}
	s.chopping.Remove(ingredientEntity)

	progress := 1.0
	if job.ChopDuration > 0 {
		progress = fmath.Clamp01(job.Elapsed / job.ChopDuration)
	}
	s.world.PushEvent(event.EventChoppingCancelled, &event.ChoppingCancelledPayload{
		Ingredient: ingredientEntity,
		Progress:   progress,
	})
	s.log.Debug("chopping cancelled",
		zap.Uint32("ingredient", ingredientEntity.ID),
		zap.Float64("elapsed", job.Elapsed))
}
