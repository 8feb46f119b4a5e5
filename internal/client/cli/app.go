package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gatewayauth/internal/client/client"
	"github.com/dmitrijs2005/gatewayauth/internal/client/config"
)

type App struct {
	config   *config.Config
	client   client.Client
	reader   *bufio.Reader
	out      io.Writer
	userName string
}

// NewApp connects a gRPC client to the configured endpoint.
func NewApp(cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	c, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
	if err != nil {
		return nil, fmt.Errorf("error creating client: %w", err)
	}
	return newApp(cfg, c, in, out), nil
}

func newApp(cfg *config.Config, c client.Client, in io.Reader, out io.Writer) *App {
	return &App{
		config: cfg,
		client: c,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run starts the REPL and closes the client when the user leaves.
func (a *App) Run(ctx context.Context) error {
	defer a.client.Close()

	fmt.Fprintln(a.out, "Gateway CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

func (a *App) getStatus() string {
	if a.isLoggedIn() && a.userName != "" {
		return "(" + a.userName + ")"
	}
	return ""
}

// withTimeout bounds a single RPC by the configured request timeout.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
