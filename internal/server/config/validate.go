package config

import (
	"errors"
	"fmt"
)

const minTokenSize = 16

// Validate reports settings that would make the server unusable.
func (c *Config) Validate() error {
	var errs []error

	if c.EndpointAddrHTTP == "" {
		errs = append(errs, errors.New("http endpoint address is empty"))
	}
	if c.EndpointAddrGRPC == "" {
		errs = append(errs, errors.New("grpc endpoint address is empty"))
	}
	if c.TokenSize < minTokenSize {
		errs = append(errs, fmt.Errorf("token size %d is below the minimum of %d bytes", c.TokenSize, minTokenSize))
	}
	if c.DefaultEmailDomain == "" {
		errs = append(errs, errors.New("default email domain is empty"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}
	if c.TelemetryInterval <= 0 {
		errs = append(errs, errors.New("telemetry interval must be positive"))
	}

	return errors.Join(errs...)
}
