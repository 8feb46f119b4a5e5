package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gatewayauth/internal/flagx"
	"github.com/dmitrijs2005/gatewayauth/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// keep their current value.
type JSONConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// -c or -config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}
