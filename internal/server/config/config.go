// Package config handles configuration for the gateway server: defaults,
// an optional config file (JSON, TOML or YAML), GATEWAY_* environment
// variables and command-line flags, applied in that order.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the gateway server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the REST façade.
//   - EndpointAddrGRPC: bind address for the gRPC façade.
//   - LogLevel / LogBackend: logger level (debug|info|warn|error) and backend (slog|zap).
//   - TokenSize: random bytes per issued token; tokens are hex encoded, so twice as many characters.
//   - DefaultEmailDomain: domain used for the email of users registered without one.
//   - MetricsNamespace: Prometheus namespace for all exported series.
//   - ShutdownTimeout: how long servers may drain on shutdown.
//   - TelemetryInterval: tick of the simulated device telemetry.
type Config struct {
	EndpointAddrHTTP   string
	EndpointAddrGRPC   string
	LogLevel           string
	LogBackend         string
	TokenSize          int
	DefaultEmailDomain string
	MetricsNamespace   string
	ShutdownTimeout    time.Duration
	TelemetryInterval  time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.TokenSize = 24
	c.DefaultEmailDomain = "example.local"
	c.MetricsNamespace = "gateway"
	c.ShutdownTimeout = 5 * time.Second
	c.TelemetryInterval = time.Second
}

// LoadConfig builds a Config from the process arguments and environment.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], os.Getenv)
}

func load(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, getenv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
