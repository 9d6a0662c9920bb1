package transport

import "context"

type EventType string

const (
	// SessionExpired is emitted once per failed refresh, after the store was cleared.
	SessionExpired EventType = "sessionExpired"
)

// Event notifies the presentation layer about session transitions
type Event struct {
	Type   EventType
	Reason error
}

// Listener receives session events; it runs on the goroutine performing the refresh.
type Listener func(ctx context.Context, event *Event)

func (r *RoundTripper) notify(ctx context.Context, event *Event) {
	for _, listener := range r.listeners {
		listener(ctx, event)
	}
}
