package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/medbook/internal/booking/calendar"
	httpapi "github.com/aussiebroadwan/medbook/internal/booking/http"
	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/aussiebroadwan/medbook/internal/booking/store"
	"github.com/aussiebroadwan/medbook/pkg/cryptox"
	"github.com/aussiebroadwan/medbook/pkg/jwtx"
	"github.com/aussiebroadwan/medbook/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application owns every long-lived dependency of the booking service.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   *jwtx.HS256Signer
	verifier jwtx.Verifier

	mirror     *calendar.Mirror
	dispatcher calendar.Dispatcher
	redis      *redis.Client // nil unless CALENDAR_DISPATCH=redis

	authService      *service.AuthService
	bookingService   *service.BookingService
	userService      *service.UserService
	bootstrapService *service.BootstrapService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized. Nothing is
// started until Run.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "booking-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cryptox.SetPepperPath(cfg.PepperFile)

	ctx := context.Background()

	db, driver, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	app.db = db
	app.logger.Info("database migrations applied successfully", "driver", driver)

	app.signer, app.verifier, err = initSigner(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.mirror, app.dispatcher, app.redis, err = initCalendar(ctx, cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mostly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Start launches background workers without serving HTTP.
func (app *Application) Start() {
	app.dispatcher.Start()
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.Start()

	app.logger.Info("booking service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"calendar_dispatch", app.cfg.CalendarDispatch,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown stops accepting requests, drains the calendar dispatcher and
// closes the database. In-flight bookings finish before their calendar
// events are drained.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down booking service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.dispatcher.Stop()

	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("booking service stopped")
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:     app.db,
		Signer:    app.signer,
		Issuer:    app.cfg.Issuer,
		Audience:  service.DefaultAudience,
		AccessTTL: app.cfg.AccessTokenTTL,
	}
	app.bookingService = &service.BookingService{
		Store:      app.db,
		Dispatcher: app.dispatcher,
	}
	app.userService = &service.UserService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}

	if app.bootstrapService.Enabled() {
		app.logger.Info("bootstrap endpoint enabled")
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.CORSAllowedOrigins,
	)

	router.AuthService = app.authService
	router.BookingService = app.bookingService
	router.UserService = app.userService
	router.BootstrapService = app.bootstrapService
	router.Dispatcher = app.dispatcher
	router.Mirror = app.mirror
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
