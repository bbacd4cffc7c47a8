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

// SharpeningSystem owns knife sharpness restoration
// A knife is idle or sharpening; the in-flight state is the presence of
// a SharpeningProgress row, not a flag
type SharpeningSystem struct {
	world *engine.World
	log   *zap.Logger

	sharpness  *engine.Store[component.SharpnessComponent]
	sharpening *engine.Store[component.SharpeningProgressComponent]

	statActive    *atomic.Int64
	statCompleted *atomic.Int64
}

func NewSharpeningSystem(world *engine.World, log *zap.Logger, st *status.Registry) *SharpeningSystem {
	return &SharpeningSystem{
		world:         world,
		log:           log.Named("sharpening"),
		sharpness:     world.Components.Sharpness,
		sharpening:    world.Components.Sharpening,
		statActive:    st.Ints.Get("sharpen.active"),
		statCompleted: st.Ints.Get("sharpen.completed"),
	}
}

// Name returns system's name
func (s *SharpeningSystem) Name() string {
	return "sharpening"
}

func (s *SharpeningSystem) Priority() int {
	return parameter.PrioritySharpening
}

// Update advances every in-flight sharpening job
// The restoration rate uses the gap captured at start, so it stays
// constant for the whole job instead of decaying near the top
func (s *SharpeningSystem) Update(dt float64) {
	entities := s.sharpening.All()
	active := 0

	for _, entity := range entities {
		job, ok := s.sharpening.Get(entity)
		if !ok {
			continue
		}
		sharp, ok := s.sharpness.Get(entity)
		if !ok {
			// Blade state vanished mid-job; nothing left to restore
			s.world.DeferRemove(s.sharpening, entity)
			continue
		}

		rate := (sharp.MaxLevel - job.InitialLevel) / job.Duration
		sharp.Level = math.Min(sharp.Level+rate*dt, sharp.MaxLevel)
		job.Elapsed += dt

		s.world.PushEvent(event.EventSharpeningProgress, &event.SharpeningProgressPayload{
			Knife:    entity,
			Progress: fmath.Clamp01(job.Elapsed / job.Duration),
			Level:    sharp.Level,
		})

		if fmath.AtLeast(job.Elapsed, job.Duration) {
			// Land exactly on the ceiling, no accumulated float error
			sharp.Level = sharp.MaxLevel
			s.sharpness.Set(entity, sharp)
			s.world.PushEvent(event.EventKnifeSharpened, &event.KnifeSharpenedPayload{
				Knife: entity,
				Level: sharp.Level,
			})
			s.world.DeferRemove(s.sharpening, entity)
			s.statCompleted.Add(1)
			s.log.Debug("knife sharpened",
				zap.Uint32("knife", entity.ID),
				zap.Float64("level", sharp.Level))
			continue
		}

		s.sharpness.Set(entity, sharp)
		s.sharpening.Set(entity, job)
		active++
	}

	s.statActive.Store(int64(active))
}

// StartSharpening begins restoring a knife toward its max level
// Ignored when the knife has no blade, is already sharpening, or the
// duration is not a positive finite number
func (s *SharpeningSystem) StartSharpening(knife core.Entity, duration float64) {
	if !s.world.Alive(knife) {
		return
	}
	sharp, ok := s.sharpness.Get(knife)
	if !ok {
		return
	}
	if s.sharpening.Has(knife) {
		return
	}
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return
	}

	s.sharpening.Set(knife, component.SharpeningProgressComponent{
		InitialLevel: sharp.Level,
		Elapsed:      0,
		Duration:     duration,
	})
	s.world.PushEvent(event.EventSharpeningStarted, &event.SharpeningStartedPayload{
		Knife:    knife,
		Duration: duration,
	})
	s.log.Debug("sharpening started",
		zap.Uint32("knife", knife.ID),
		zap.Float64("level", sharp.Level),
		zap.Float64("duration", duration))
}

// CancelSharpening aborts an in-flight job, keeping the level gained so far
// Cancelling an idle knife is a no-op
func (s *SharpeningSystem) CancelSharpening(knife core.Entity) {
	job, ok := s.sharpening.Get(knife)
	if !ok {
		return
	}
	s.sharpening.Remove(knife)

	s.world.PushEvent(event.EventSharpeningCancelled, &event.SharpeningCancelledPayload{
		Knife:    knife,
		Progress: fmath.Clamp01(job.Elapsed / job.Duration),
	})
	s.log.Debug("sharpening cancelled",
		zap.Uint32("knife", knife.ID),
		zap.Float64("elapsed", job.Elapsed))
}
