package calendar

import (
	"context"
	"time"
)

// DefaultTimeout bounds a single insert call.
const DefaultTimeout = 10 * time.Second

// Mirror pushes events to a Client. One attempt per event, no retries.
type Mirror struct {
	client  Client
	timeout time.Duration
}

// NewMirror returns a Mirror. A nil client is allowed, every push then
// fails with "calendar credentials not configured".
func NewMirror(client Client, timeout time.Duration) *Mirror {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Mirror{client: client, timeout: timeout}
}

// Configured reports whether a client is present.
func (m *Mirror) Configured() bool { return m != nil && m.client != nil }

// Push inserts ev and reports the outcome. It never panics and never
// returns an error, failures are carried in the Result.
func (m *Mirror) Push(ctx context.Context, ev Event) Result {
	if !m.Configured() {
		return Failed("calendar credentials not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if err := m.client.InsertEvent(ctx, ev); err != nil {
		return Failed(err.Error())
	}
	return Ok()
}
