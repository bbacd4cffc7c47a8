package event

import "github.com/skilletworks/lunchrush/parameter"

// KitchenEvent is one outbound notification from the simulation
type KitchenEvent struct {
	Type    EventType
	Payload any
	Tick    int64 // Tick counter value when the event was emitted
}

// Queue buffers simulation events between ticks in FIFO order
// Producers are the systems and command handlers running inside the
// simulation goroutine; the embedder drains with Consume once per tick.
// The buffer grows on demand so a busy tick never drops events
type Queue struct {
	events []KitchenEvent
	pushed int64
}

// NewQueue creates a queue with the given initial capacity
// A non-positive capacity falls back to parameter.EventQueueCapacity
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = parameter.EventQueueCapacity
	}
	return &Queue{
		events: make([]KitchenEvent, 0, capacity),
	}
}

// Push appends an event in emission order
func (q *Queue) Push(ev KitchenEvent) {
	q.events = append(q.events, ev)
	q.pushed++
}

// Consume returns all pending events in FIFO order and clears the buffer
// The returned slice is owned by the caller
func (q *Queue) Consume() []KitchenEvent {
	if len(q.events) == 0 {
		return nil
	}
	result := make([]KitchenEvent, len(q.events))
	copy(result, q.events)
	q.events = q.events[:0]
	return result
}

// Len returns the number of buffered events
func (q *Queue) Len() int {
	return len(q.events)
}

// Pushed returns the total number of events emitted over the queue's lifetime
func (q *Queue) Pushed() int64 {
	return q.pushed
}
