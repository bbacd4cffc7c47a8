package replay

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/skilletworks/lunchrush/config"
	"github.com/skilletworks/lunchrush/core"
	"github.com/skilletworks/lunchrush/event"
	"github.com/skilletworks/lunchrush/sim"
)

// TraceEntry is one recorded event with its registry name
type TraceEntry struct {
	Tick  int64  `json:"tick"`
	Type  string `json:"type"`
	Event any    `json:"event"`
}

// Result captures everything a run produced
type Result struct {
	Script  string `json:"script"`
	RunID   string `json:"run_id"`
	Session string `json:"session"`
	Ticks   int64  `json:"ticks"`
	// Trace lists every emitted event in order
	Trace []TraceEntry `json:"trace"`
	// Digests holds the world digest after each tick
	Digests []uint64 `json:"digests"`
	// Final is the digest after the last tick
	Final uint64 `json:"final"`
	// Status is the kitchen metric snapshot after the last tick
	Status map[string]any `json:"status"`
}

// Runner executes scripts against fresh kitchens
type Runner struct {
	cfg config.Config
	log *zap.Logger
}

// NewRunner creates a runner; a nil logger is replaced with a no-op one
func NewRunner(cfg config.Config, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{cfg: cfg, log: log.Named("replay")}
}

// Run executes the script against a fresh kitchen and records the
// event trace plus a state digest per tick
// Two runs of the same script must produce identical digests
func (r *Runner) Run(script Script) (*Result, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}

	kitchen := sim.New(r.cfg, r.log)
	if err := kitchen.Initialize(); err != nil {
		return nil, errors.Wrapf(err, "script %q", script.Name)
	}

	entities := map[string]core.Entity{}
	if script.Setup != nil {
		entities = script.Setup(kitchen.World())
	}

	res := &Result{
		Script:  script.Name,
		RunID:   uuid.NewString(),
		Session: kitchen.Session(),
		Ticks:   script.Ticks,
		Digests: make([]uint64, 0, script.Ticks),
	}

	for tick := int64(1); tick <= script.Ticks; tick++ {
		for _, step := range script.Steps {
			if step.Tick != tick {
				continue
			}
			cmd := step.Command(entities)
			if err := kitchen.ProcessCommand(cmd); err != nil {
				return nil, errors.Wrapf(err, "script %q tick %d", script.Name, tick)
			}
		}

		if err := kitchen.Update(script.DT); err != nil {
			return nil, errors.Wrapf(err, "script %q tick %d", script.Name, tick)
		}

		for _, ev := range kitchen.ConsumeEvents() {
			res.Trace = append(res.Trace, TraceEntry{
				Tick:  ev.Tick,
				Type:  event.TypeName(ev.Type),
				Event: ev.Payload,
			})
		}
		res.Digests = append(res.Digests, kitchen.Digest())
	}

	res.Final = res.Digests[len(res.Digests)-1]
	res.Status = kitchen.Status().Snapshot()
	r.log.Info("script finished",
		zap.String("script", script.Name),
		zap.String("run", res.RunID),
		zap.Int64("ticks", res.Ticks),
		zap.Int("events", len(res.Trace)),
		zap.Uint64("digest", res.Final))
	return res, nil
}
