// Package replay runs scripted kitchen sessions and records their event
// stream and per-tick state digests, so two runs of the same script can
// be checked for determinism.
package replay

import (
	"math"

	"github.com/pkg/errors"

	"github.com/skilletworks/lunchrush/command"
	"github.com/skilletworks/lunchrush/core"
	"github.com/skilletworks/lunchrush/engine"
)

// Script is a reproducible kitchen session: a world setup followed by
// commands issued at fixed ticks
type Script struct {
	Name string
	// DT is the simulation step per tick in seconds
	DT float64
	// Ticks is the number of update steps to run
	Ticks int64
	// Setup populates the world and names the entities the steps refer to
	Setup func(w *engine.World) map[string]core.Entity
	// Steps are applied in order; a step at tick N runs before update N
	Steps []Step
}

// Step issues one command at a given tick
type Step struct {
	Tick int64
	// Command builds the command from the entities Setup named
	Command func(entities map[string]core.Entity) command.Command
}

// Validate rejects scripts the runner cannot execute
func (s Script) Validate() error {
	if s.DT <= 0 || math.IsNaN(s.DT) || math.IsInf(s.DT, 0) {
		return errors.Errorf("script %q: dt must be a positive finite number, got %v", s.Name, s.DT)
	}
	if s.Ticks <= 0 {
		return errors.Errorf("script %q: ticks must be positive, got %d", s.Name, s.Ticks)
	}
	for i, step := range s.Steps {
		if step.Tick < 1 || step.Tick > s.Ticks {
			return errors.Errorf("script %q: step %d targets tick %d outside 1..%d",
				s.Name, i, step.Tick, s.Ticks)
		}
		if step.Command == nil {
			return errors.Errorf("script %q: step %d has no command", s.Name, i)
		}
	}
	return nil
}
