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

// CookingSystem owns doneness, burner linkage and burn onset
// Food with a CookingProgress row is heat-tracked: it cooks while linked
// to a live burner and cools otherwise; the row survives removal from
// heat so a cooling item can be placed back without losing its doneness
type CookingSystem struct {
	world *engine.World
	log   *zap.Logger

	heatSource *engine.Store[component.HeatSourceComponent]
	cookReq    *engine.Store[component.CookRequirementsComponent]
	cooking    *engine.Store[component.CookingProgressComponent]
	burn       *engine.Store[component.BurnProgressComponent]

	statActive  *atomic.Int64
	statBurning *atomic.Int64
	statCooked  *atomic.Int64
}

func NewCookingSystem(world *engine.World, log *zap.Logger, st *status.Registry) *CookingSystem {
	return &CookingSystem{
		world:       world,
		log:         log.Named("cooking"),
		heatSource:  world.Components.HeatSource,
		cookReq:     world.Components.CookRequirements,
		cooking:     world.Components.Cooking,
		burn:        world.Components.Burn,
		statActive:  st.Ints.Get("cook.active"),
		statBurning: st.Ints.Get("cook.burning"),
		statCooked:  st.Ints.Get("cook.completed"),
	}
}

// Name returns system's name
func (s *CookingSystem) Name() string {
	return "cooking"
}

func (s *CookingSystem) Priority() int {
	return parameter.PriorityCooking
}

// CookQuality rates a doneness value against the cooked threshold
// 1.0 at a perfect landing, falling linearly with over- or undershoot
func CookQuality(doneness float64) float64 {
	return fmath.Clamp01(1 - math.Abs(doneness-parameter.BurnThreshold))
}

// Update advances doneness for every heat-tracked food item
func (s *CookingSystem) Update(dt float64) {
	entities := s.cooking.All()
	active := 0
	burning := 0

	for _, entity := range entities {
		job, ok := s.cooking.Get(entity)
		if !ok {
			continue
		}

		prev := job.Doneness
		heat, onHeat := s.burnerHeat(job)
		optimal := false

		if onHeat {
			rate := heat / job.CookTime
			job.Doneness = fmath.Clamp(job.Doneness+rate*dt, 0, parameter.DonenessMax)
			optimal = heat >= job.OptimalHeatMin && heat <= job.OptimalHeatMax
		} else {
			rate := (1 / job.CookTime) * parameter.CoolingFactor
			job.Doneness = fmath.Clamp(job.Doneness-rate*dt, 0, parameter.DonenessMax)
		}

		// Fixed-step accumulation lands just shy of the threshold
		// (ten 0.1 increments sum below 1.0); snap within epsilon
		if fmath.Approx(job.Doneness, parameter.BurnThreshold) {
			job.Doneness = parameter.BurnThreshold
		}

		s.cooking.Set(entity, job)
		s.world.PushEvent(event.EventCookingProgress, &event.CookingProgressPayload{
			Food:     entity,
			Doneness: job.Doneness,
			Optimal:  optimal,
		})

		// Upward crossing of the cooked threshold, once per crossing
		if prev < parameter.BurnThreshold && job.Doneness >= parameter.BurnThreshold {
			quality := CookQuality(job.Doneness)
			s.world.PushEvent(event.EventFoodCooked, &event.FoodCookedPayload{
				Food:     entity,
				Doneness: job.Doneness,
				Quality:  quality,
				Perfect:  fmath.Approx(job.Doneness, parameter.BurnThreshold),
			})
			s.statCooked.Add(1)
			s.log.Debug("food cooked",
				zap.Uint32("food", entity.ID),
				zap.Float64("quality", quality))
		}

		// Burn onset fires exactly once when doneness first exceeds the
		// threshold; the burn row itself is maintained below
		if prev <= parameter.BurnThreshold && job.Doneness > parameter.BurnThreshold {
			s.world.PushEvent(event.EventBurningStarted, &event.BurningStartedPayload{
				Food:     entity,
				Doneness: job.Doneness,
			})
			s.log.Warn("food burning",
				zap.Uint32("food", entity.ID),
				zap.Float64("doneness", job.Doneness))
		}

		// Burn row exists exactly while doneness exceeds the threshold
		if job.Doneness > parameter.BurnThreshold {
			s.burn.Set(entity, component.BurnProgressComponent{
				Level: fmath.Clamp01(job.Doneness - parameter.BurnThreshold),
			})
			burning++
		} else if s.burn.Has(entity) {
			s.world.DeferRemove(s.burn, entity)
		}

		active++
	}

	s.statActive.Store(int64(active))
	s.statBurning.Store(int64(burning))
}

// burnerHeat resolves the effective heat for a tracked item
// A job marked on-heat whose stove died or lost its burner falls back to
// the cooling path for the tick; the link itself is left alone
func (s *CookingSystem) burnerHeat(job component.CookingProgressComponent) (float64, bool) {
	if !job.OnHeat {
		return 0, false
	}
	if !s.world.Alive(job.Stove) {
		return 0, false
	}
	hs, ok := s.heatSource.Get(job.Stove)
	if !ok {
		return 0, false
	}
	return hs.Heat, true
}

// SetHeatLevel snaps the requested value to the nearest discrete level
// Emits HeatLevelChanged even when the snapped level equals the old one
// Ignored on burners without a heat source and on non-finite requests
func (s *CookingSystem) SetHeatLevel(stove core.Entity, requested float64) {
	if !s.world.Alive(stove) {
		return
	}
	hs, ok := s.heatSource.Get(stove)
	if !ok {
		return
	}
	if math.IsNaN(requested) || math.IsInf(requested, 0) {
		return
	}

	prev := hs.Heat
	hs.Heat = parameter.SnapHeat(requested)
	s.heatSource.Set(stove, hs)

	s.world.PushEvent(event.EventHeatLevelChanged, &event.HeatLevelChangedPayload{
		Stove:    stove,
		Previous: prev,
		Heat:     hs.Heat,
	})
	s.log.Debug("heat level changed",
		zap.Uint32("stove", stove.ID),
		zap.Float64("requested", requested),
		zap.Float64("heat", hs.Heat))
}

// PlaceFoodOnBurner links a food item to a burner and begins tracking it
// Ignored when the food lacks cooking requirements, the burner lacks a
// heat source or is occupied, or the food is already on a burner
// Doneness survives re-placement, so a cooled item resumes where it was
func (s *CookingSystem) PlaceFoodOnBurner(food, stove core.Entity) {
	if !s.world.Alive(food) || !s.world.Alive(stove) {
		return
	}
	req, ok := s.cookReq.Get(food)
	if !ok {
		return
	}
	if req.CookTime <= 0 || math.IsNaN(req.CookTime) {
		// Malformed reference data; never enters heat tracking
		return
	}
	hs, ok := s.heatSource.Get(stove)
	if !ok || hs.HasFood {
		return
	}
	job, tracked := s.cooking.Get(food)
	if tracked && job.OnHeat {
		// One burner at a time; take it off the current one first
		return
	}

	job.OptimalHeatMin = req.OptimalHeatMin
	job.OptimalHeatMax = req.OptimalHeatMax
	job.CookTime = req.CookTime
	job.OnHeat = true
	job.Stove = stove
	s.cooking.Set(food, job)

	hs.Food = food
	hs.HasFood = true
	s.heatSource.Set(stove, hs)

	s.world.PushEvent(event.EventFoodPlacedOnHeat, &event.FoodPlacedOnHeatPayload{
		Food:  food,
		Stove: stove,
	})
	s.log.Debug("food placed on heat",
		zap.Uint32("food", food.ID),
		zap.Uint32("stove", stove.ID),
		zap.Float64("doneness", job.Doneness))
}

// RemoveFoodFromBurner takes food off its burner; tracking is retained so
// the item cools instead of freezing at its current doneness
// Ignored when the food is not on heat
func (s *CookingSystem) RemoveFoodFromBurner(food core.Entity) {
	job, ok := s.cooking.Get(food)
	if !ok || !job.OnHeat {
		return
	}

	stove := job.Stove
	if hs, ok := s.heatSource.Get(stove); ok && hs.HasFood && hs.Food == food {
		hs.Food = core.Entity{}
		hs.HasFood = false
		s.heatSource.Set(stove, hs)
	}

	job.OnHeat = false
	s.cooking.Set(food, job)

	s.world.PushEvent(event.EventFoodRemovedFromHeat, &event.FoodRemovedFromHeatPayload{
		Food:  food,
		Stove: stove,
	})
	s.log.Debug("food removed from heat",
		zap.Uint32("food", food.ID),
		zap.Uint32("stove", stove.ID))
}
