package calendar

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/medbook/pkg/slogx"
)

// Dispatcher hands events to the Mirror. Dispatch never blocks on the
// calendar API and never reports failure to the caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, ev Event)
	Start()
	Stop()

	// Ready reports whether the dispatcher's backing queue is reachable.
	Ready(ctx context.Context) error
}

func eventLogger(ctx context.Context, base *slog.Logger, ev Event) *slog.Logger {
	l := base
	if l == nil {
		l = slogx.FromContext(ctx)
	}
	return l.With("calendar_id", ev.CalendarID, "appointment_id", ev.AppointmentID)
}

// InlineDispatcher pushes on the caller's goroutine. The request waits for
// the calendar call, bounded by the mirror timeout.
type InlineDispatcher struct {
	Mirror *Mirror
	Logger *slog.Logger
}

var _ Dispatcher = (*InlineDispatcher)(nil)

func (d *InlineDispatcher) Dispatch(ctx context.Context, ev Event) {
	// The booking is already committed, a client disconnect must not abort
	// the mirror call.
	res := d.Mirror.Push(context.WithoutCancel(ctx), ev)
	LogResult(eventLogger(ctx, d.Logger, ev), res)
}

func (d *InlineDispatcher) Start()                        {}
func (d *InlineDispatcher) Stop()                         {}
func (d *InlineDispatcher) Ready(_ context.Context) error { return nil }

type job struct {
	ctx context.Context
	ev  Event
}

// WorkerDispatcher queues events in memory for a fixed pool of workers.
// When the queue is full the event is dropped and logged. Queued events
// are lost on a crash, Stop drains what is left.
type WorkerDispatcher struct {
	Mirror  *Mirror
	Logger  *slog.Logger
	Workers int

	queue chan job
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var _ Dispatcher = (*WorkerDispatcher)(nil)

func NewWorkerDispatcher(m *Mirror, logger *slog.Logger, workers, queueSize int) *WorkerDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &WorkerDispatcher{
		Mirror:  m,
		Logger:  logger,
		Workers: workers,
		queue:   make(chan job, queueSize),
	}
}

func (d *WorkerDispatcher) Dispatch(ctx context.Context, ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		LogResult(eventLogger(ctx, d.Logger, ev), Failed("calendar dispatcher stopped"))
		return
	}

	select {
	case d.queue <- job{ctx: context.WithoutCancel(ctx), ev: ev}:
	default:
		LogResult(eventLogger(ctx, d.Logger, ev), Failed("calendar queue full"))
	}
}

// Start launches the workers.
func (d *WorkerDispatcher) Start() {
	for i := 0; i < d.Workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
}

// Stop closes the queue and waits for the workers to drain it.
func (d *WorkerDispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *WorkerDispatcher) Ready(_ context.Context) error { return nil }

func (d *WorkerDispatcher) work() {
	defer d.wg.Done()
	for j := range d.queue {
		res := d.Mirror.Push(j.ctx, j.ev)
		LogResult(eventLogger(j.ctx, d.Logger, j.ev), res)
	}
}
