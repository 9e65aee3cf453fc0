package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/cors"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
)

const corsMaxAge = 600

// CORS returns the cross-origin middleware. An origin of "*" admits any
// origin without credentials; any other value admits exactly that origin and
// allows credentials. Preflight requests are answered with 200 before
// routing, so they never reach the store guard.
func CORS(cfg config.CORSConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: []string{cfg.Origin},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		ExposedHeaders:   []string{headerRequestID, headerCorrelationID},
		AllowCredentials: cfg.Origin != config.CORSAnyOrigin,
		MaxAge:           corsMaxAge,
	}

	c := cors.New(opts)
	if logger != nil {
		c.Log = corsLogger{logger: logger}
	}
	return c.Handler
}

// corsLogger adapts slog to the Printf-style logger the cors package expects.
type corsLogger struct {
	logger *slog.Logger
}

func (l corsLogger) Printf(format string, args ...any) {
	if !l.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.logger.Debug(fmt.Sprintf(format, args...), slog.String("component", "cors"))
}
