package config

const (
	defaultServerPort = 5000

	defaultBreakerMaxFailures = 5
	defaultBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"app.env": EnvProduction,

		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "0s",

		"log.level":  "info",
		"log.format": "json",

		"store.uri":                            "mongodb://localhost:27017/todo-db",
		"store.database":                       "",
		"store.collection":                     "todos",
		"store.connect_timeout":                "10s",
		"store.breaker.max_failures":           defaultBreakerMaxFailures,
		"store.breaker.timeout":                "30s",
		"store.breaker.half_open_limit":        defaultBreakerHalfOpen,
		"store.rate_limit.requests_per_second": 0,
		"store.rate_limit.burst":               0,

		"cors.origin": CORSAnyOrigin,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-service",
	}
}

// legacyEnv maps the unprefixed variables of the original deployment onto
// config keys. APP_-prefixed variables still take precedence.
var legacyEnv = map[string]string{
	"PORT":        "server.port",
	"MONGODB_URI": "store.uri",
	"CORS_ORIGIN": "cors.origin",
	"NODE_ENV":    "app.env",
}
