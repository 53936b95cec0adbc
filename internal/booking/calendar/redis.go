package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultQueueName is the Redis list jobs are pushed to.
const DefaultQueueName = "medbook:calendar:events"

const (
	defaultPollTimeout = 2 * time.Second
	enqueueTimeout     = 2 * time.Second
	errorBackoff       = time.Second
)

// redisJob is the JSON payload stored on the list.
type redisJob struct {
	ID         string    `json:"id"`
	Event      Event     `json:"event"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// RedisDispatcher queues events on a Redis list so they survive a restart
// and can be consumed by any replica.
type RedisDispatcher struct {
	rdb         *redis.Client
	queue       string
	mirror      *Mirror
	logger      *slog.Logger
	pollTimeout time.Duration

	started   atomic.Bool
	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	doneCh    chan struct{}
}

var _ Dispatcher = (*RedisDispatcher)(nil)

func NewRedisDispatcher(rdb *redis.Client, queue string, m *Mirror, logger *slog.Logger) *RedisDispatcher {
	if queue == "" {
		queue = DefaultQueueName
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisDispatcher{
		rdb:         rdb,
		queue:       queue,
		mirror:      m,
		logger:      logger,
		pollTimeout: defaultPollTimeout,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

func (d *RedisDispatcher) Dispatch(ctx context.Context, ev Event) {
	logger := eventLogger(ctx, d.logger, ev)

	payload, err := json.Marshal(redisJob{
		ID:         uuid.NewString(),
		Event:      ev,
		EnqueuedAt: time.Now().UTC(),
	})
	if err != nil {
		LogResult(logger, Failed("encode job: "+err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), enqueueTimeout)
	defer cancel()

	if err := d.rdb.RPush(ctx, d.queue, payload).Err(); err != nil {
		LogResult(logger, Failed("enqueue job: "+err.Error()))
	}
}

// Start launches the consumer loop. Calling it more than once is a no-op.
func (d *RedisDispatcher) Start() {
	d.startOnce.Do(func() {
		d.started.Store(true)
		d.logger.Info("calendar redis consumer started", "queue", d.queue)
		go d.run()
	})
}

// Stop ends the consumer loop after the job in hand, if any, finishes.
// Jobs still on the list stay there for the next consumer.
func (d *RedisDispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
	if !d.started.Load() {
		return
	}
	<-d.doneCh
	d.logger.Info("calendar redis consumer stopped")
}

func (d *RedisDispatcher) Ready(ctx context.Context) error {
	return d.rdb.Ping(ctx).Err()
}

func (d *RedisDispatcher) run() {
	defer close(d.doneCh)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-d.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		select {
		case <-d.stopCh:
			return
		default:
		}

		res, err := d.rdb.BLPop(ctx, d.pollTimeout, d.queue).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			d.logger.Error("calendar queue read failed", "err", err)
			select {
			case <-d.stopCh:
				return
			case <-time.After(errorBackoff):
			}
			continue
		}

		// BLPop returns [key, value].
		if len(res) != 2 {
			continue
		}
		d.handle(res[1])
	}
}

func (d *RedisDispatcher) handle(raw string) {
	var j redisJob
	if err := json.Unmarshal([]byte(raw), &j); err != nil {
		d.logger.Error("calendar job malformed, dropping", "err", err)
		return
	}

	logger := d.logger.With(
		"job_id", j.ID,
		"calendar_id", j.Event.CalendarID,
		"appointment_id", j.Event.AppointmentID,
		"queued_for", time.Since(j.EnqueuedAt).Round(time.Millisecond).String(),
	)

	// Not tied to the loop context so Stop lets the current push finish.
	LogResult(logger, d.mirror.Push(context.Background(), j.Event))
}
