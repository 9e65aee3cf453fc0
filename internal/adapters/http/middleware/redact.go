package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders request headers as log attributes sorted by name, so
// two log lines for the same client compare cleanly. Credential-bearing
// headers (logging.SensitiveHeaders) are masked and repeated values are
// comma-joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, slog.String(name, headerValue(name, headers[name])))
	}
	return attrs
}

func headerValue(name string, values []string) string {
	if logging.SensitiveHeaders[strings.ToLower(name)] {
		return redacted
	}
	return strings.Join(values, ",")
}
