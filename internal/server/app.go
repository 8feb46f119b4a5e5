// Package server initializes and runs the gateway: it builds the in-memory
// stores and the auth service, then serves them over REST and gRPC until a
// termination signal arrives.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gatewayauth/internal/logging"
	"github.com/dmitrijs2005/gatewayauth/internal/server/config"
	"github.com/dmitrijs2005/gatewayauth/internal/server/metrics"
	"github.com/dmitrijs2005/gatewayauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gatewayauth/internal/server/rest"
	"github.com/dmitrijs2005/gatewayauth/internal/server/services"
	"github.com/dmitrijs2005/gatewayauth/internal/server/telemetry"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/gatewayauth/internal/server/grpc"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	repos      repomanager.RepositoryManager
	sampler    *telemetry.Sampler
	httpServer *rest.HTTPServer
	grpcServer *gs.GRPCServer
}

func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdout)
}

func newApp(c *config.Config, logOutput io.Writer) (*App, error) {

	logger, err := logging.New(c.LogBackend, c.LogLevel, logOutput)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	if lvl, _ := logging.ParseLevel(c.LogLevel); lvl == logging.LevelDebug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	repos := repomanager.NewInMemoryRepositoryManager(c.TokenSize)
	authService := services.NewAuthService(repos, c)

	sampler := telemetry.NewSampler(c.TelemetryInterval, logger)
	m := metrics.New(c.MetricsNamespace, func() float64 { return float64(sampler.Uptime()) })

	counts := func() telemetry.Counts {
		return telemetry.Counts{
			Users:         repos.Users().Count(),
			AccessTokens:  repos.AccessTokens().Count(),
			RefreshTokens: repos.RefreshTokens().Count(),
		}
	}

	handler := rest.NewHandler(authService, sampler, counts, m)

	return &App{
		config:     c,
		logger:     logger,
		repos:      repos,
		sampler:    sampler,
		httpServer: rest.NewHTTPServer(c.EndpointAddrHTTP, c.ShutdownTimeout, logger, handler, m),
		grpcServer: gs.NewGRPCServer(c.EndpointAddrGRPC, logger, authService, m),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}

// Run serves until ctx is cancelled, a termination signal arrives or one of
// the servers fails. A failing server stops the others.
func (app *App) Run(ctx context.Context) error {

	ctx, stop := app.initSignalHandler(ctx)
	defer stop()

	app.logger.Info(ctx, "Starting app...",
		"http", app.config.EndpointAddrHTTP,
		"grpc", app.config.EndpointAddrGRPC,
		"log_backend", app.config.LogBackend)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.sampler.Run(ctx) })
	g.Go(func() error { return app.httpServer.Run(ctx) })
	g.Go(func() error { return app.grpcServer.Run(ctx) })

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		app.logger.Error(context.WithoutCancel(ctx), "App stopped with error", "error", err.Error())
		return err
	}

	app.logger.Info(context.WithoutCancel(ctx), "App stopped")
	return nil
}
