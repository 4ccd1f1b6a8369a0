// Package eventbus provides the table-change notifications behind the
// live-updating views: every repository write publishes the affected
// table, and any subscriber (typically the TUI) re-queries what it is
// currently showing.
package eventbus

import (
	"context"
	"sync"
	"time"
)

// Tables that publish change events.
const (
	TableGoals    = "goals"
	TableTimeLogs = "time_logs"
	TableNotes    = "notes"
)

// Event describes a single write to a table. Op is informational;
// subscribers generally reload on any event for a table they read.
type Event struct {
	Table     string `json:"table"`
	Op        string `json:"op,omitempty"` // "create", "update", "delete"
	Timestamp int64  `json:"timestamp"`
}

// Hub fans out change events to all active subscribers.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Publish delivers evt to every subscriber without blocking the writer.
func (h *Hub) Publish(evt Event) {
	if h == nil {
		return
	}
	if evt.Timestamp == 0 {
		evt.Timestamp = time.Now().UnixMilli()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- evt:
		default:
			// Slow subscribers drop events rather than stall writes.
			// Views reload wholesale on the next event, so a missed
			// notification only delays a refresh.
		}
	}
}

// Subscribe registers a new subscriber channel. The subscription is
// removed and the channel closed when ctx is cancelled.
func (h *Hub) Subscribe(ctx context.Context, buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
		close(ch)
	}()

	return ch
}
