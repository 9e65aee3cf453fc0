package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
)

// Recovery returns middleware that recovers from panics in downstream handlers.
// When a panic occurs the middleware logs the panic value with the full stack
// trace and writes a 500 envelope. The stack is copied into the envelope's
// error field only when exposeStack is true, which is the case in development.
// If the response headers have already been written, only the log entry is
// emitted.
func Recovery(logger *slog.Logger, exposeStack bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				stack := string(debug.Stack())
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", stack),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if rw.started {
					return
				}
				env := dto.Failure(dto.MsgInternal, "")
				if exposeStack {
					env.Error = fmt.Sprintf("%v\n%s", v, stack)
				}
				dto.WriteJSON(rw, r, http.StatusInternalServerError, env)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
