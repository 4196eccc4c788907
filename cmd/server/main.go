// Package main is the entry point for the agency site API. It opens the
// configured store, wires all dependencies using samber/do v2, starts the
// HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/agency-site-api/internal/adapters/http"
	"github.com/jsamuelsen11/agency-site-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/agency-site-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/agency-site-api/internal/adapters/store/postgres"
	"github.com/jsamuelsen11/agency-site-api/internal/adapters/store/postgrest"
	"github.com/jsamuelsen11/agency-site-api/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/agency-site-api/internal/app"
	"github.com/jsamuelsen11/agency-site-api/internal/app/form"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/outreach"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/config"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/database"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/health"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/logging"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/agency-site-api/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	// Fail fast on contact details the outreach links cannot be built from.
	if _, err := outreach.BuildLinks(cfg.Agency.Email, cfg.Agency.Phone, cfg.Agency.Subject); err != nil {
		return fmt.Errorf("agency contact details: %w", err)
	}

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	store, closeStore, err := openStore(ctx, cfg, otel.metrics, logger)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
	}
	defer closeStore()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue[ports.Store](injector, store)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)

	logger.Info("store ready", slog.String("driver", cfg.Store.Driver))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
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

// openStore connects the configured persistence driver. The returned func
// releases its connections.
func openStore(
	ctx context.Context,
	cfg *config.Config,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) (ports.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgREST:
		client := postgrest.NewClient(&cfg.Client, &cfg.Store.PostgREST, metrics, logger)
		return postgrest.New(client, cfg.Store.ConflictCodes, logger), func() {}, nil

	case config.DriverPostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.Store.Postgres)
		if err != nil {
			return nil, nil, err
		}
		return postgres.New(pool, cfg.Store.ConflictCodes), pool.Close, nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.Store.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				logger.Error("closing sqlite", slog.Any("error", err))
			}
		}
		return sqlite.New(db), closeDB, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.SubmissionGateway, error) {
		store := do.MustInvoke[ports.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewGateway(store, store, metrics, logger, clockwork.NewRealClock()), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BackOfficeService, error) {
		store := do.MustInvoke[ports.Store](i)
		return app.NewBackOffice(store, store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ShowcaseService, error) {
		store := do.MustInvoke[ports.Store](i)
		return app.NewShowcase(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*form.Registry, error) {
		gateway := do.MustInvoke[ports.SubmissionGateway](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return form.NewRegistry(gateway, clockwork.NewRealClock(), cfg.Forms, logger, form.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		return adapthttp.Handlers{
			Submission: handlers.NewSubmissionHandler(do.MustInvoke[ports.SubmissionGateway](i)),
			BackOffice: handlers.NewBackOfficeHandler(do.MustInvoke[ports.BackOfficeService](i)),
			Showcase:   handlers.NewShowcaseHandler(do.MustInvoke[ports.ShowcaseService](i)),
			Form:       handlers.NewFormHandler(do.MustInvoke[*form.Registry](i)),
			Outreach:   handlers.NewOutreachHandler(cfg.Agency),
			Scheduling: handlers.NewSchedulingHandler(cfg.Forms, do.MustInvoke[*telemetry.Metrics](i)),
			Health:     handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), logger),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.CORS(cfg.Server.AllowedOrigins),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
