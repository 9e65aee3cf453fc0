// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The router applies them in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging →
//	SecurityHeaders → CORS → Timeout → [StoreReady] → Handler
//
// StoreReady wraps only the routes that touch the document store. Each
// middleware is a func(http.Handler) http.Handler and can be composed using
// the Chain helper.
package middleware

import "net/http"

// responseWriter records what a handler sent: the status, whether the
// response has started, and the body size. Recovery uses started to decide
// whether an error envelope can still be written; OpenTelemetry and Logging
// report status and size.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	started    bool
	written    int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader keeps the first status only, like net/http does.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.started {
		return
	}
	rw.statusCode = code
	rw.started = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.started = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
