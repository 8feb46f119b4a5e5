package config

import (
	"fmt"
	"strconv"
	"time"
)

// Environment variables recognised by parseEnv.
const (
	EnvHTTPAddr           = "GATEWAY_HTTP_ADDR"
	EnvGRPCAddr           = "GATEWAY_GRPC_ADDR"
	EnvLogLevel           = "GATEWAY_LOG_LEVEL"
	EnvLogBackend         = "GATEWAY_LOG_BACKEND"
	EnvTokenSize          = "GATEWAY_TOKEN_SIZE"
	EnvDefaultEmailDomain = "GATEWAY_DEFAULT_EMAIL_DOMAIN"
	EnvMetricsNamespace   = "GATEWAY_METRICS_NAMESPACE"
	EnvShutdownTimeout    = "GATEWAY_SHUTDOWN_TIMEOUT"
	EnvTelemetryInterval  = "GATEWAY_TELEMETRY_INTERVAL"
)

// parseEnv overlays non-empty GATEWAY_* variables.
func parseEnv(config *Config, getenv func(string) string) error {
	strs := map[string]*string{
		EnvHTTPAddr:           &config.EndpointAddrHTTP,
		EnvGRPCAddr:           &config.EndpointAddrGRPC,
		EnvLogLevel:           &config.LogLevel,
		EnvLogBackend:         &config.LogBackend,
		EnvDefaultEmailDomain: &config.DefaultEmailDomain,
		EnvMetricsNamespace:   &config.MetricsNamespace,
	}
	for key, dst := range strs {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	if v := getenv(EnvTokenSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTokenSize, err)
		}
		config.TokenSize = n
	}

	durations := map[string]*time.Duration{
		EnvShutdownTimeout:   &config.ShutdownTimeout,
		EnvTelemetryInterval: &config.TelemetryInterval,
	}
	for key, dst := range durations {
		if v := getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = d
		}
	}

	return nil
}
