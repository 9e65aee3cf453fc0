package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// StoreReady returns middleware that rejects requests with a 503 envelope
// while the document store connection is not usable. Mount it only on routes
// that need the store; health probes must stay reachable without it.
func StoreReady(status ports.StoreStatus) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !status.Ready() {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "store not ready, rejecting request")
				dto.WriteJSON(w, r, http.StatusServiceUnavailable, dto.Failure(dto.MsgUnavailable, dto.DetailNotReady))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
