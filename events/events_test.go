package events

import (
	"testing"
)

type recordingHandler struct {
	name  string
	types []EventType
	log   *[]string
}

func (h *recordingHandler) HandleEvent(ev GameEvent) {
	*h.log = append(*h.log, h.name+":"+ev.Type.String())
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

// TestQueueFIFO verifies events come out in push order and the queue empties
func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue(8)
	q.Push(GameEvent{Type: EventGravityToggled})
	q.Push(GameEvent{Type: EventDimensionShifted})
	q.Push(GameEvent{Type: EventCollision})

	got := q.Consume()
	if len(got) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got))
	}
	want := []EventType{EventGravityToggled, EventDimensionShifted, EventCollision}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], ev.Type)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after consume, got %d", q.Len())
	}
	if q.Consume() != nil {
		t.Error("Expected nil from empty queue")
	}
}

// TestQueueOverflowDropsOldest verifies the bounded queue evicts from the front
func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue(2)
	q.Push(GameEvent{Type: EventKeyPressed, Frame: 1})
	q.Push(GameEvent{Type: EventKeyPressed, Frame: 2})
	q.Push(GameEvent{Type: EventKeyPressed, Frame: 3})

	got := q.Consume()
	if len(got) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(got))
	}
	if got[0].Frame != 2 || got[1].Frame != 3 {
		t.Errorf("Expected frames 2,3, got %d,%d", got[0].Frame, got[1].Frame)
	}
}

// TestRouterDispatchOrder verifies registration order per type and FIFO across events
func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue(0)
	r := NewRouter(q)

	var log []string
	r.Register(&recordingHandler{name: "a", types: []EventType{EventCollision, EventVictory}, log: &log})
	r.Register(&recordingHandler{name: "b", types: []EventType{EventCollision}, log: &log})

	q.Push(GameEvent{Type: EventCollision})
	q.Push(GameEvent{Type: EventVictory})
	q.Push(GameEvent{Type: EventTimeToggled})

	if n := r.DispatchAll(); n != 3 {
		t.Errorf("Expected 3 dispatched events, got %d", n)
	}

	want := []string{"a:Collision", "b:Collision", "a:Victory"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], log[i])
		}
	}

	if r.HandlerCount(EventCollision) != 2 {
		t.Errorf("Expected 2 collision handlers, got %d", r.HandlerCount(EventCollision))
	}
}

// TestHandlerFunc verifies the function adapter routes to its callback
func TestHandlerFunc(t *testing.T) {
	q := NewEventQueue(4)
	r := NewRouter(q)

	count := 0
	r.Register(HandlerFunc{Types: AllTypes(), Fn: func(GameEvent) { count++ }})

	q.Push(GameEvent{Type: EventKeyPressed})
	q.Push(GameEvent{Type: EventRewindFinished})
	r.DispatchAll()

	if count != 2 {
		t.Errorf("Expected 2 calls, got %d", count)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventVictory.String() != "Victory" {
		t.Errorf("Expected Victory, got %s", EventVictory.String())
	}
	if EventType(99).String() != "Unknown" {
		t.Errorf("Expected Unknown for out of range type")
	}
	if len(AllTypes()) != 7 {
		t.Errorf("Expected 7 event types, got %d", len(AllTypes()))
	}
}
