// Package guard decorates a document store with a circuit breaker, an
// optional rate limiter and OpenTelemetry instrumentation.
//
// Every repository call passes through, in order:
//
//	Rate Limiter → Circuit Breaker → OTEL Span → Store
//
// Construction:
//
//	g := guard.New(store, &cfg.Store, metrics, logger)
//	registry.Register(g) // reports as "store"
package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// HealthName is the key the guarded store reports under in readiness output.
const HealthName = "store"

// Compile-time interface check.
var _ ports.Store = (*Guard)(nil)

// ErrNotReady is returned by HealthCheck while the underlying connection is
// down.
var ErrNotReady = errors.New("store connection not ready")

// Guard wraps a ports.Store. It is itself a ports.Store.
type Guard struct {
	store   ports.Store
	breaker *gobreaker.CircuitBreaker[any]
	limiter *rate.Limiter // nil when rate limiting is disabled
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New wraps store. If metrics is nil, metric recording is skipped.
func New(store ports.Store, cfg *config.StoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        HealthName,
		MaxRequests: toUint32(cfg.Breaker.HalfOpenLimit),
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.Breaker.MaxFailures
		},
		// Only store failures count. A missing document says nothing about
		// the store's health, and an aborted call is not counted at all.
		IsSuccessful: func(err error) bool {
			return !errors.Is(err, domain.ErrStore)
		},
		IsExcluded: aborted,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	}

	return &Guard{
		store:   store,
		breaker: cb,
		limiter: limiter,
		metrics: metrics,
		logger:  logger,
	}
}

// List implements ports.TodoRepository.
func (g *Guard) List(ctx context.Context) ([]todo.Item, error) {
	return call(ctx, g, "list", g.store.List)
}

// Insert implements ports.TodoRepository.
func (g *Guard) Insert(ctx context.Context, item todo.Item) (*todo.Item, error) {
	return call(ctx, g, "insert", func(ctx context.Context) (*todo.Item, error) {
		return g.store.Insert(ctx, item)
	})
}

// Replace implements ports.TodoRepository.
func (g *Guard) Replace(ctx context.Context, id todo.ID, draft todo.Draft, updatedAt time.Time) (*todo.Item, error) {
	return call(ctx, g, "replace", func(ctx context.Context) (*todo.Item, error) {
		return g.store.Replace(ctx, id, draft, updatedAt)
	})
}

// Delete implements ports.TodoRepository.
func (g *Guard) Delete(ctx context.Context, id todo.ID) (*todo.Item, error) {
	return call(ctx, g, "delete", func(ctx context.Context) (*todo.Item, error) {
		return g.store.Delete(ctx, id)
	})
}

// Ready reports the underlying connection state; an open breaker also
// counts as not ready.
func (g *Guard) Ready() bool {
	return g.store.Ready() && g.breaker.State() != gobreaker.StateOpen
}

// Name implements ports.HealthChecker.
func (g *Guard) Name() string {
	return HealthName
}

// HealthCheck combines breaker state, a live check of the underlying store
// and its connection state. The store is pinged even while marked not ready
// so a probe can observe recovery.
func (g *Guard) HealthCheck(ctx context.Context) error {
	switch state := g.breaker.State(); state {
	case gobreaker.StateClosed:
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", HealthName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", HealthName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", HealthName, state)
	}

	if err := g.store.HealthCheck(ctx); err != nil {
		if !g.store.Ready() {
			return fmt.Errorf("%w: %w", ErrNotReady, err)
		}
		return fmt.Errorf("%s (%s): %w", HealthName, g.store.Name(), err)
	}
	if !g.store.Ready() {
		return ErrNotReady
	}
	return nil
}

// Close closes the underlying store.
func (g *Guard) Close(ctx context.Context) error {
	return g.store.Close(ctx)
}

// call runs fn through the limiter, the breaker and a span. Breaker and
// limiter rejections are store errors matching domain.ErrUnavailable.
func call[T any](ctx context.Context, g *Guard, op string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()

	var zero T
	if err := g.waitForRateLimit(ctx); err != nil {
		g.recordMetrics(ctx, op, start, "rate_limited")
		return zero, domain.NewStoreError(op, fmt.Errorf("%w: rate limited: %w", domain.ErrUnavailable, err))
	}

	res, err := g.breaker.Execute(func() (any, error) {
		spanCtx, span := g.startSpan(ctx, op)
		defer span.End()

		v, err := fn(spanCtx)
		finishSpan(span, err)
		return v, err
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		g.recordMetrics(ctx, op, start, "circuit_open")
		return zero, domain.NewStoreError(op, fmt.Errorf("%w: %w", domain.ErrUnavailable, err))
	}

	g.recordMetrics(ctx, op, start, result(err))
	if err != nil {
		return zero, err
	}

	v, _ := res.(T)
	return v, nil
}

func (g *Guard) waitForRateLimit(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}
	return g.limiter.Wait(ctx)
}

func (g *Guard) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("store")

	return tracer.Start(ctx, "store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", g.store.Name()),
			attribute.String("db.operation", op),
		),
	)
}

// aborted reports whether err comes from the caller's context rather than
// the store.
func aborted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func finishSpan(span trace.Span, err error) {
	if err == nil || aborted(err) || !errors.Is(err, domain.ErrStore) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func result(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case aborted(err):
		return "aborted"
	case errors.Is(err, domain.ErrStore):
		return "error"
	default:
		return "other"
	}
}

// recordMetrics is safe to call with nil metrics.
func (g *Guard) recordMetrics(ctx context.Context, op string, start time.Time, result string) {
	if g.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(g.store.Name()),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	g.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	g.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
