package system

import (
	"go.uber.org/zap"

	"github.com/skilletworks/lunchrush/engine"
	"github.com/skilletworks/lunchrush/event"
	"github.com/skilletworks/lunchrush/status"
)

// newTestWorld builds a world wired to a fresh event queue
func newTestWorld() (*engine.World, *event.Queue) {
	w := engine.NewWorld()
	q := event.NewQueue(0)
	tick := new(int64)
	w.SetEventMetadata(q, tick)
	return w, q
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func testStatus() *status.Registry {
	return status.NewRegistry()
}

// filterEvents keeps only events of the given type, preserving order
func filterEvents(events []event.KitchenEvent, et event.EventType) []event.KitchenEvent {
	var out []event.KitchenEvent
	for _, ev := range events {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}
