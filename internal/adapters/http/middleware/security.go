package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// SecurityHeaders sets the static response headers every response carries.
func SecurityHeaders() func(http.Handler) http.Handler {
	return Chain(
		chimw.SetHeader("Referrer-Policy", "strict-origin-when-cross-origin"),
		chimw.SetHeader("X-Content-Type-Options", "nosniff"),
		chimw.SetHeader("X-Frame-Options", "SAMEORIGIN"),
	)
}
