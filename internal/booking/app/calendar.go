package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/medbook/internal/booking/calendar"
	"github.com/redis/go-redis/v9"
)

// initCalendar builds the mirror and the dispatcher feeding it. Missing
// credentials are not fatal: bookings still work and every push is logged
// as failed.
func initCalendar(ctx context.Context, cfg Config, logger *slog.Logger) (*calendar.Mirror, calendar.Dispatcher, *redis.Client, error) {
	credentials := calendar.ResolveCredentialsFile(cfg.GoogleCredentialsFile, calendar.FallbackCredentialsFile)

	var client calendar.Client
	gc, err := calendar.NewGoogleClient(ctx, calendar.GoogleConfig{
		CredentialsFile: credentials,
		Endpoint:        cfg.CalendarEndpoint,
	})
	if err != nil {
		logger.Warn("google calendar disabled, appointments will not be mirrored", "error", err)
	} else {
		client = gc
		logger.Info("google calendar client ready", "credentials_file", credentials, "endpoint", cfg.CalendarEndpoint)
	}

	mirror := calendar.NewMirror(client, cfg.CalendarTimeout)
	calLogger := logger.With("component", "calendar")

	switch cfg.CalendarDispatch {
	case DispatchInline:
		return mirror, &calendar.InlineDispatcher{Mirror: mirror, Logger: calLogger}, nil, nil

	case DispatchRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return mirror, calendar.NewRedisDispatcher(rdb, cfg.CalendarQueueName, mirror, calLogger), rdb, nil

	default:
		return mirror, calendar.NewWorkerDispatcher(mirror, calLogger, cfg.CalendarWorkers, cfg.CalendarQueueSize), nil, nil
	}
}
