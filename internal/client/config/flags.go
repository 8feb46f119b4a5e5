package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/gatewayauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags. Only
// -a and -t are parsed; everything else is left to other components.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")

	return fs.Parse(args)
}
