// Package sim exposes the kitchen simulation facade: the single entry
// point the presentation layer uses to submit commands, advance ticks
// and drain events.
package sim

import (
	"math"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/skilletworks/lunchrush/command"
	"github.com/skilletworks/lunchrush/config"
	"github.com/skilletworks/lunchrush/engine"
	"github.com/skilletworks/lunchrush/event"
	"github.com/skilletworks/lunchrush/status"
	"github.com/skilletworks/lunchrush/system"
)

// Kitchen owns the world, the processors and the command/event bridge
//
// All mutation happens synchronously inside ProcessCommand and Update on
// the caller's goroutine; only the status registry may be read from
// elsewhere
type Kitchen struct {
	cfg     config.Config
	log     *zap.Logger
	world   *engine.World
	queue   *event.Queue
	stats   *status.Registry
	session string
	tick    int64

	initialized bool

	movement   *system.MovementSystem
	sharpening *system.SharpeningSystem
	cooking    *system.CookingSystem
	chopping   *system.ChoppingSystem

	handlers map[command.Kind]func(payload any)

	statTicks    *atomic.Int64
	statCommands *atomic.Int64
	statEvents   *atomic.Int64
	statEntities *atomic.Int64
}

// New creates an uninitialized kitchen
// A nil logger is replaced with a no-op one
func New(cfg config.Config, logger *zap.Logger) *Kitchen {
	if logger == nil {
		logger = zap.NewNop()
	}
	event.InitRegistry()

	k := &Kitchen{
		cfg:     cfg,
		log:     logger.Named("kitchen"),
		world:   engine.NewWorld(),
		queue:   event.NewQueue(cfg.EventBuffer),
		stats:   status.NewRegistry(),
		session: uuid.NewString(),
	}
	k.world.SetEventMetadata(k.queue, &k.tick)

	k.statTicks = k.stats.Ints.Get("sim.ticks")
	k.statCommands = k.stats.Ints.Get("sim.commands")
	k.statEvents = k.stats.Ints.Get("sim.events_emitted")
	k.statEntities = k.stats.Ints.Get("sim.entities")
	k.stats.Strings.Get("sim.session").Store(k.session)

	return k
}

// Initialize constructs the processors in their fixed order and builds
// the command routing table
// Calling it twice is a contract failure
func (k *Kitchen) Initialize() error {
	if k.initialized {
		return errors.Wrap(ErrAlreadyInitialized, "initialize")
	}

	k.movement = system.NewMovementSystem(k.world, k.log, k.stats)
	k.sharpening = system.NewSharpeningSystem(k.world, k.log, k.stats)
	k.cooking = system.NewCookingSystem(k.world, k.log, k.stats)
	k.chopping = system.NewChoppingSystem(k.world, k.log, k.stats)

	k.world.AddSystem(k.movement)
	k.world.AddSystem(k.sharpening)
	k.world.AddSystem(k.cooking)
	k.world.AddSystem(k.chopping)

	// One handler per kind; a payload of the wrong type is dropped the
	// same way a stale entity handle is
	k.handlers = map[command.Kind]func(any){
		command.KindSetVelocity: func(p any) {
			if payload, ok := p.(*command.SetVelocityPayload); ok {
				k.movement.SetVelocity(payload.Entity, payload.Velocity)
			}
		},
		command.KindSetPosition: func(p any) {
			if payload, ok := p.(*command.SetPositionPayload); ok {
				k.movement.SetPosition(payload.Entity, payload.Position)
			}
		},
		command.KindStartSharpening: func(p any) {
			if payload, ok := p.(*command.StartSharpeningPayload); ok {
				k.sharpening.StartSharpening(payload.Knife, payload.Duration)
			}
		},
		command.KindCancelSharpening: func(p any) {
			if payload, ok := p.(*command.CancelSharpeningPayload); ok {
				k.sharpening.CancelSharpening(payload.Knife)
			}
		},
		command.KindSetHeatLevel: func(p any) {
			if payload, ok := p.(*command.SetHeatLevelPayload); ok {
				k.cooking.SetHeatLevel(payload.Stove, payload.Heat)
			}
		},
		command.KindPlaceFoodOnBurner: func(p any) {
			if payload, ok := p.(*command.PlaceFoodOnBurnerPayload); ok {
				k.cooking.PlaceFoodOnBurner(payload.Food, payload.Stove)
			}
		},
		command.KindRemoveFoodFromBurner: func(p any) {
			if payload, ok := p.(*command.RemoveFoodFromBurnerPayload); ok {
				k.cooking.RemoveFoodFromBurner(payload.Food)
			}
		},
		command.KindStartChopping: func(p any) {
			if payload, ok := p.(*command.StartChoppingPayload); ok {
				k.chopping.StartChopping(payload.Ingredient, payload.Knife)
			}
		},
		command.KindCancelChopping: func(p any) {
			if payload, ok := p.(*command.CancelChoppingPayload); ok {
				k.chopping.CancelChopping(payload.Ingredient)
			}
		},
	}

	k.initialized = true
	k.log.Info("kitchen initialized",
		zap.String("session", k.session),
		zap.Int("systems", len(k.world.Systems())))
	return nil
}

// ProcessCommand routes one command to its handler synchronously
// Unknown kinds and calls before Initialize are contract failures
func (k *Kitchen) ProcessCommand(cmd command.Command) error {
	if !k.initialized {
		return errors.Wrap(ErrNotInitialized, "process command")
	}
	handler, ok := k.handlers[cmd.Kind]
	if !ok {
		return errors.Wrapf(ErrUnknownCommand, "kind %d (%s)", cmd.Kind, command.KindName(cmd.Kind))
	}

	handler(cmd.Payload)
	k.statCommands.Add(1)
	k.log.Debug("command processed", zap.String("kind", command.KindName(cmd.Kind)))
	return nil
}

// Update advances the simulation by dt seconds, running every processor
// once in priority order
// Degenerate steps (zero, negative, non-finite) advance nothing, not
// even the tick counter
func (k *Kitchen) Update(dt float64) error {
	if !k.initialized {
		return errors.Wrap(ErrNotInitialized, "update")
	}
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil
	}

	k.tick++
	k.world.Update(dt)

	k.statTicks.Store(k.tick)
	k.statEvents.Store(k.queue.Pushed())
	k.statEntities.Store(int64(k.world.EntityCount()))
	return nil
}

// ConsumeEvents returns all buffered events in emission order and clears
// the buffer
func (k *Kitchen) ConsumeEvents() []event.KitchenEvent {
	return k.queue.Consume()
}

// Reset empties the kitchen: entities, components, buffered events and
// the tick counter
// Registered systems and the session identity stay
func (k *Kitchen) Reset() {
	k.world.Clear()
	k.queue.Consume()
	k.tick = 0

	k.statTicks.Store(0)
	k.statEntities.Store(0)
	k.log.Info("kitchen reset", zap.String("session", k.session))
}

// World exposes the component store for content setup and tests
func (k *Kitchen) World() *engine.World {
	return k.world
}

// Inspect returns a read-only view over entities and component names
func (k *Kitchen) Inspect() *engine.Inspector {
	return k.world.Inspect()
}

// Digest folds the full component state into one value for determinism
// checks
func (k *Kitchen) Digest() uint64 {
	return k.world.Digest()
}

// Status returns the metrics registry
func (k *Kitchen) Status() *status.Registry {
	return k.stats
}

// Session returns the unique identifier of this kitchen instance
func (k *Kitchen) Session() string {
	return k.session
}

// Tick returns the number of completed update steps
func (k *Kitchen) Tick() int64 {
	return k.tick
}
