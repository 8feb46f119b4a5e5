package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/gatewayauth/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string    REST bind address (e.g., ":8080")
//	-g string    gRPC bind address (e.g., ":50051")
//	-l string    log level
//	-b string    log backend (slog|zap)
//	-n int       random bytes per token
//	-m string    default email domain
//	-t duration  shutdown timeout (e.g., "10s")
//	-i duration  telemetry interval
//
// The arguments are filtered with flagx.FilterArgs first so flags owned by
// other components (such as -c) do not break parsing.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-l", "-b", "-n", "-m", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run REST server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogBackend, "b", config.LogBackend, "log backend (slog|zap)")
	fs.IntVar(&config.TokenSize, "n", config.TokenSize, "random bytes per token")
	fs.StringVar(&config.DefaultEmailDomain, "m", config.DefaultEmailDomain, "default email domain")
	fs.DurationVar(&config.ShutdownTimeout, "t", config.ShutdownTimeout, "shutdown timeout")
	fs.DurationVar(&config.TelemetryInterval, "i", config.TelemetryInterval, "telemetry interval")

	return fs.Parse(args)
}
