package events

import (
	"context"
	"sync"
	"time"
)

// Routing keys of the domain events.
const (
	SaleCreated        = "sale.created"
	SaleDeleted        = "sale.deleted"
	UserDeleted        = "user.deleted"
	RevenueMonthClosed = "revenue.month_closed"
)

// Event is one domain event. Payload is encoded as JSON on the wire.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

func New(eventType string, payload any) Event {
	return Event{Type: eventType, OccurredAt: time.Now().UTC(), Payload: payload}
}

// Publisher delivers events. Failures are the caller's to log, they never
// undo the write that produced the event.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Types returns the types of the recorded events in publish order.
func (r *Recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}
