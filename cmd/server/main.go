// Package main is the entry point for the initiative tracker. It wires all
// dependencies using samber/do v2, restores the roster from the actor store,
// starts the HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/initiative-tracker/internal/adapters/events"
	adapthttp "github.com/jsamuelsen11/initiative-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/initiative-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/initiative-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/initiative-tracker/internal/adapters/store"
	"github.com/jsamuelsen11/initiative-tracker/internal/adapters/store/memory"
	"github.com/jsamuelsen11/initiative-tracker/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/initiative-tracker/internal/app"
	"github.com/jsamuelsen11/initiative-tracker/internal/platform/config"
	"github.com/jsamuelsen11/initiative-tracker/internal/platform/health"
	"github.com/jsamuelsen11/initiative-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/initiative-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/initiative-tracker/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	storeOpenTimeout      = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(config.Profile())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Restore the roster before accepting requests.
	turns, err := do.Invoke[*app.TurnController](injector)
	if err != nil {
		return fmt.Errorf("resolving turn controller: %w", err)
	}
	loadCtx, loadCancel := context.WithTimeout(ctx, storeOpenTimeout)
	err = turns.Load(loadCtx)
	loadCancel()
	if err != nil {
		return fmt.Errorf("restoring roster: %w", err)
	}

	// Resolve the server (eagerly wires the rest of the graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	actors := do.MustInvoke[*store.Guarded](injector)
	hub := do.MustInvoke[*events.Hub](injector)
	registry.Register(actors)
	registry.Register(hub)

	// Event streams only end when the hub closes.
	server.OnShutdown(hub.Close)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if cfg.Store.Driver == config.DriverSQLite {
		if err := do.MustInvoke[*sqlite.Store](injector).Close(); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Persistence: the configured driver behind the circuit breaker.
	do.Provide(injector, func(_ do.Injector) (*sqlite.Store, error) {
		if cfg.Store.Driver != config.DriverSQLite {
			return nil, fmt.Errorf("store driver is %q", cfg.Store.Driver)
		}
		ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
		defer cancel()
		return sqlite.Open(ctx, cfg.Store.Path)
	})

	do.Provide(injector, func(i do.Injector) (*store.Guarded, error) {
		var inner ports.ActorStore
		switch cfg.Store.Driver {
		case config.DriverMemory:
			inner = memory.New()
		default:
			db, err := do.Invoke[*sqlite.Store](i)
			if err != nil {
				return nil, fmt.Errorf("opening sqlite store: %w", err)
			}
			inner = db
		}
		logger.Info("actor store ready", slog.String("driver", cfg.Store.Driver))
		return store.NewGuarded(inner, "actor-store", cfg.Store.CircuitBreaker, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*events.Hub, error) {
		return events.NewHub(cfg.Tracker.EventBuffer, logger), nil
	})

	// Application layer.
	do.Provide(injector, func(i do.Injector) (*app.TurnController, error) {
		actors := do.MustInvoke[*store.Guarded](i)
		hub := do.MustInvoke[*events.Hub](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTurnController(actors, hub, logger,
			app.WithMetrics(metrics),
			app.WithSaveWorkers(cfg.Tracker.SaveWorkers),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TrackerService, error) {
		return do.MustInvoke[*app.TurnController](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CommandDispatcher, error) {
		turns := do.MustInvoke[*app.TurnController](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewInterpreter(turns, logger, metrics), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Inbound HTTP.
	do.Provide(injector, func(i do.Injector) (*handlers.TrackerHandler, error) {
		return handlers.NewTrackerHandler(do.MustInvoke[ports.TrackerService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CommandHandler, error) {
		dispatcher := do.MustInvoke[ports.CommandDispatcher](i)
		tracker := do.MustInvoke[ports.TrackerService](i)
		return handlers.NewCommandHandler(dispatcher, tracker,
			handlers.WithCommandRate(cfg.Tracker.CommandRate, cfg.Tracker.CommandBurst),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.EventsHandler, error) {
		return handlers.NewEventsHandler(do.MustInvoke[*events.Hub](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		trackerH := do.MustInvoke[*handlers.TrackerHandler](i)
		commandH := do.MustInvoke[*handlers.CommandHandler](i)
		eventsH := do.MustInvoke[*handlers.EventsHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(trackerH, commandH, eventsH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
