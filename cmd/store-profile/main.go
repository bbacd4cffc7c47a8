// Profiling harness for the sparse-set store hot paths: component
// writes through a system update, query intersections, and entity
// churn per tick.
//
// Usage:
//
//	go build ./cmd/store-profile
//	./store-profile -mode cpu -entities 10000 -ticks 2000
//	go tool pprof -http=":8000" store-profile cpu.pprof
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/skilletworks/lunchrush/component"
	"github.com/skilletworks/lunchrush/engine"
	"github.com/skilletworks/lunchrush/status"
	"github.com/skilletworks/lunchrush/system"
)

var (
	mode     = flag.String("mode", "cpu", "Profile mode: cpu|mem")
	entities = flag.Int("entities", 10000, "Entities to populate")
	ticks    = flag.Int("ticks", 2000, "Update ticks to run")
	churn    = flag.Int("churn", 64, "Entities destroyed and recreated per tick")
)

func main() {
	flag.Parse()

	var opt func(*profile.Profile)
	switch *mode {
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfileAllocs
	default:
		fmt.Fprintf(os.Stderr, "store-profile: unknown mode %q\n", *mode)
		os.Exit(2)
	}

	p := profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook)
	run(*entities, *ticks, *churn)
	p.Stop()
}

func run(count, ticks, churn int) {
	w := engine.NewWorld()
	w.AddSystem(system.NewMovementSystem(w, zap.NewNop(), status.NewRegistry()))

	for i := 0; i < count; i++ {
		spawn(w, i)
	}

	dt := 1.0 / 60.0
	var matched int
	for tick := 0; tick < ticks; tick++ {
		w.Update(dt)

		// Query intersection keeps the read path hot alongside the writes
		matched = len(w.Query().
			With(w.Components.Position).
			With(w.Components.Velocity).
			Execute())

		// Destroy and respawn a slice of the population to exercise
		// swap-remove and slot recycling
		for i := 0; i < churn; i++ {
			respawn(w, tick*churn+i)
		}
	}

	fmt.Printf("entities=%d ticks=%d churn=%d matched=%d alive=%d digest=%016x\n",
		count, ticks, churn, matched, w.EntityCount(), w.Digest())
}

func spawn(w *engine.World, i int) {
	e := w.CreateEntity()
	w.Components.Position.Set(e, component.PositionComponent{X: float64(i), Y: float64(-i)})
	if i%2 == 0 {
		w.Components.Velocity.Set(e, component.VelocityComponent{X: 1, Y: -0.5})
	}
}

func respawn(w *engine.World, i int) {
	all := w.Components.Position.All()
	if len(all) == 0 {
		return
	}
	w.DestroyEntity(all[i%len(all)])
	spawn(w, i)
}
