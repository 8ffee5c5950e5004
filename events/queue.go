package events

// DefaultQueueSize bounds pending events between two dispatches
const DefaultQueueSize = 256

// EventQueue is a bounded FIFO of pending events
// Thread-Safety: none, producer and consumer are the game loop goroutine
//
// Overflow: oldest events dropped when full
type EventQueue struct {
	events []GameEvent
	size   int
}

// NewEventQueue creates a queue holding at most size events
func NewEventQueue(size int) *EventQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &EventQueue{
		events: make([]GameEvent, 0, size),
		size:   size,
	}
}

// Push appends an event, dropping the oldest when full
func (eq *EventQueue) Push(event GameEvent) {
	if len(eq.events) == eq.size {
		copy(eq.events, eq.events[1:])
		eq.events = eq.events[:len(eq.events)-1]
	}
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	result := make([]GameEvent, len(eq.events))
	copy(result, eq.events)
	eq.events = eq.events[:0]
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
