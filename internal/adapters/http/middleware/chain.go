package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
)

// Chain composes middleware so that the first argument is outermost:
//
//	Chain(Recovery, RequestID, Logging)(handler) == Recovery(RequestID(Logging(handler)))
//
// Nil entries are skipped, which lets callers leave out optional stages.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			if middlewares[i] == nil {
				continue
			}
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// PipelineConfig carries the settings of the standard request pipeline.
type PipelineConfig struct {
	Logger *slog.Logger

	// Metrics may be nil when telemetry is disabled.
	Metrics *telemetry.Metrics

	CORS config.CORSConfig

	// RequestTimeout of zero leaves requests unbounded.
	RequestTimeout time.Duration

	// ExposeStack puts panic stack traces into 500 responses. Development only.
	ExposeStack bool
}

// Pipeline returns the global middleware of the todo API, outermost first.
// The store readiness guard is not included; the router applies it to the
// store-backed routes only.
func Pipeline(cfg PipelineConfig) []func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return []func(http.Handler) http.Handler{
		Recovery(logger, cfg.ExposeStack),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(cfg.Metrics),
		Logging(logger),
		SecurityHeaders(),
		CORS(cfg.CORS, logger),
		Timeout(cfg.RequestTimeout),
	}
}
