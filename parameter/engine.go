package parameter

// EventQueueCapacity is the initial capacity of the outbound event
// buffer; the queue grows past it rather than dropping events
const EventQueueCapacity = 256

// StoreCapacity is the initial entity capacity of each component store
const StoreCapacity = 64
