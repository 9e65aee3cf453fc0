// Package main is the entry point for the todo service. It wires all
// dependencies using samber/do v2, connects to the document store, starts the
// HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
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

	adapthttp "github.com/jsamuelsen11/todo-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/adapters/store"
	"github.com/jsamuelsen11/todo-service/internal/adapters/store/guard"
	"github.com/jsamuelsen11/todo-service/internal/app"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	storeCloseTimeout     = 5 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, test, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(otel, logger)

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolving the server wires the full graph, including the store
	// connection. A store that cannot be reached aborts startup.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	st := do.MustInvoke[*guard.Guard](injector)
	defer closeStore(st, logger)

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(st)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	logger.Info("todo service started",
		slog.String("profile", profile),
		slog.String("env", cfg.App.Env),
		slog.String("addr", server.Addr()),
	)

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

	logger.Info("shutdown complete")
	return nil
}

func closeStore(st *guard.Guard, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), storeCloseTimeout)
	defer cancel()

	if err := st.Close(ctx); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}
}

func flushTelemetry(otel *otelProviders, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
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

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.Store, error) {
		s, err := store.Open(ctx, &cfg.Store, logger)
		if err != nil {
			return nil, fmt.Errorf("connecting to store: %w", err)
		}
		return s, nil
	})

	do.Provide(injector, func(i do.Injector) (*guard.Guard, error) {
		s, err := do.Invoke[ports.Store](i)
		if err != nil {
			return nil, err
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return guard.New(s, &cfg.Store, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		repo, err := do.Invoke[*guard.Guard](i)
		if err != nil {
			return nil, err
		}
		return app.NewTodoService(repo, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		svc, err := do.Invoke[ports.TodoService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewTodoHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH, err := do.Invoke[*handlers.TodoHandler](i)
		if err != nil {
			return nil, err
		}
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		st := do.MustInvoke[*guard.Guard](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		pipeline := middleware.Pipeline(middleware.PipelineConfig{
			Logger:         logger,
			Metrics:        metrics,
			CORS:           cfg.CORS,
			RequestTimeout: cfg.Server.RequestTimeout,
			ExposeStack:    cfg.App.IsDevelopment(),
		})
		return adapthttp.NewRouter(todoH, healthH, st, pipeline...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
