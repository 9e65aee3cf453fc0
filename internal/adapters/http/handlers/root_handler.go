package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
)

const msgRunning = "Todo backend API is running"

// Root handles GET / and GET /api.
func Root(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusOK, dto.Envelope{Success: true, Message: msgRunning})
}
