package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/gatewayauth/internal/flagx"
	"github.com/dmitrijs2005/gatewayauth/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Pointer fields let
// a file override only the settings it mentions.
type FileConfig struct {
	EndpointAddrHTTP   *string         `json:"endpoint_addr_http" toml:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	EndpointAddrGRPC   *string         `json:"endpoint_addr_grpc" toml:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	LogLevel           *string         `json:"log_level" toml:"log_level" yaml:"log_level"`
	LogBackend         *string         `json:"log_backend" toml:"log_backend" yaml:"log_backend"`
	TokenSize          *int            `json:"token_size" toml:"token_size" yaml:"token_size"`
	DefaultEmailDomain *string         `json:"default_email_domain" toml:"default_email_domain" yaml:"default_email_domain"`
	MetricsNamespace   *string         `json:"metrics_namespace" toml:"metrics_namespace" yaml:"metrics_namespace"`
	ShutdownTimeout    *timex.Duration `json:"shutdown_timeout" toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	TelemetryInterval  *timex.Duration `json:"telemetry_interval" toml:"telemetry_interval" yaml:"telemetry_interval"`
}

// parseFile overlays the file named by -c/-config, if any. The format is
// chosen by extension: .json, .toml, .yaml or .yml.
func parseFile(config *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	fc := &FileConfig{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, fc)
	case ".toml":
		_, err = toml.Decode(string(data), fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		return fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	fc.apply(config)
	return nil
}

func (fc *FileConfig) apply(config *Config) {
	setIf(&config.EndpointAddrHTTP, fc.EndpointAddrHTTP)
	setIf(&config.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setIf(&config.LogLevel, fc.LogLevel)
	setIf(&config.LogBackend, fc.LogBackend)
	setIf(&config.TokenSize, fc.TokenSize)
	setIf(&config.DefaultEmailDomain, fc.DefaultEmailDomain)
	setIf(&config.MetricsNamespace, fc.MetricsNamespace)
	if fc.ShutdownTimeout != nil {
		config.ShutdownTimeout = fc.ShutdownTimeout.Duration
	}
	if fc.TelemetryInterval != nil {
		config.TelemetryInterval = fc.TelemetryInterval.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
