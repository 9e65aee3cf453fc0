// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Environment names accepted in app.env.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds all configuration for the service.
type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Store     StoreConfig     `koanf:"store"`
	CORS      CORSConfig      `koanf:"cors"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// AppConfig holds process-wide settings.
type AppConfig struct {
	Env string `koanf:"env"`
}

// IsDevelopment reports whether diagnostic detail (stack traces) may be
// returned to clients.
func (a AppConfig) IsDevelopment() bool {
	return a.Env == EnvDevelopment
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig holds document store connection settings. The URI scheme
// selects the backend: mongodb/mongodb+srv, sqlite/file, or postgres.
type StoreConfig struct {
	URI            string          `koanf:"uri"`
	Database       string          `koanf:"database"`
	Collection     string          `koanf:"collection"`
	ConnectTimeout time.Duration   `koanf:"connect_timeout"`
	Breaker        BreakerConfig   `koanf:"breaker"`
	RateLimit      RateLimitConfig `koanf:"rate_limit"`
}

// BreakerConfig holds circuit breaker settings for store calls.
type BreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token-bucket settings for store calls. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// CORSConfig holds cross-origin settings. Origin "*" allows every origin
// without credentials; any other value is an exact allowed origin with
// credentials enabled.
type CORSConfig struct {
	Origin string `koanf:"origin"`
}

// CORSAnyOrigin is the Origin value that admits every origin.
const CORSAnyOrigin = "*"

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
