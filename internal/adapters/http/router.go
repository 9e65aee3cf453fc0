// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Health probes bypass the
// store readiness guard; every other route sits behind it.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	store ports.StoreStatus,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}
	r.Use(chimw.StripSlashes)

	// Set before any sub-router is created so they inherit them.
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Group(func(r chi.Router) {
		r.Use(middleware.StoreReady(store))

		r.Get("/", handlers.Root)
		r.Get("/api", handlers.Root)

		r.Get("/api/todos", todoHandler.ListTodos)
		r.Post("/api/todos", todoHandler.CreateTodo)
		r.Put("/api/todos/{id}", todoHandler.UpdateTodo)
		r.Delete("/api/todos/{id}", todoHandler.DeleteTodo)
	})

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusNotFound, dto.Envelope{
		Success: false,
		Message: dto.MsgRouteNotFound,
		Path:    r.URL.Path,
	})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusMethodNotAllowed, dto.Envelope{
		Success: false,
		Message: dto.MsgNotAllowed,
		Path:    r.URL.Path,
	})
}
