package stream

import (
	"errors"
	"testing"
)

func TestBroadcastErrorQueuesErrorEvent(t *testing.T) {
	h := NewHub()

	h.BroadcastError(errors.New("connection refused"), "ledger")

	select {
	case ev := <-h.broadcast:
		if ev.Type != EventTypeError {
			t.Errorf("Type = %v, want %v", ev.Type, EventTypeError)
		}
		if ev.Timestamp.IsZero() {
			t.Error("Timestamp not set")
		}
		data, ok := ev.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("Data = %T, want map", ev.Data)
		}
		if data["error"] != "connection refused" || data["context"] != "ledger" {
			t.Errorf("Data = %v, want error and context fields", data)
		}
	default:
		t.Fatal("no event queued")
	}
}

func TestBroadcastDropsWhenQueueFull(t *testing.T) {
	h := NewHub()

	for i := 0; i < cap(h.broadcast)+10; i++ {
		h.Broadcast(Event{Type: EventTypePick})
	}
	if len(h.broadcast) != cap(h.broadcast) {
		t.Errorf("queue length = %d, want %d", len(h.broadcast), cap(h.broadcast))
	}
}
