package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.App.validate(),
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.CORS.validate(),
		c.Telemetry.validate(),
	)
}

func (a *AppConfig) validate() error {
	switch a.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
		return nil
	default:
		return fmt.Errorf("app.env must be one of: development, production, test; got %q", a.Env)
	}
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	if _, err := logging.ParseLevel(l.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	if strings.TrimSpace(s.URI) == "" {
		errs = append(errs, errors.New("store.uri must not be empty"))
	} else if _, err := url.Parse(s.URI); err != nil {
		errs = append(errs, errors.New("store.uri is not a valid URI"))
	}
	if s.Collection == "" {
		errs = append(errs, errors.New("store.collection must not be empty"))
	}
	if s.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("store.connect_timeout must be positive"))
	}
	if s.Breaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("store.breaker.max_failures must be >= 1, got %d", s.Breaker.MaxFailures))
	}
	if s.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("store.rate_limit.requests_per_second must not be negative, got %f",
			s.RateLimit.RequestsPerSecond))
	}
	if s.RateLimit.RequestsPerSecond > 0 && s.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("store.rate_limit.burst must be >= 1 when limiting, got %d",
			s.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (c *CORSConfig) validate() error {
	if strings.TrimSpace(c.Origin) == "" {
		return errors.New("cors.origin must not be empty")
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}
