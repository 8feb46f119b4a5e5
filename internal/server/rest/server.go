// Package rest is the HTTP façade of the gateway. It decodes JSON requests,
// hands them to the auth service and encodes the results; it holds no
// business rules of its own.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gatewayauth/internal/logging"
	"github.com/dmitrijs2005/gatewayauth/internal/server/metrics"
	"github.com/gin-gonic/gin"
)

// HTTPServer serves the REST API and the Prometheus endpoint.
type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	logger          logging.Logger
	router          *gin.Engine
}

func NewHTTPServer(a string, shutdownTimeout time.Duration, l logging.Logger, h *Handler, m *metrics.Metrics) *HTTPServer {
	l = l.With("module", "http_server")
	return &HTTPServer{
		address:         a,
		shutdownTimeout: shutdownTimeout,
		logger:          l,
		router:          NewRouter(h, m, l),
	}
}

// Handler exposes the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is cancelled,
// then drains in-flight requests for at most the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *HTTPServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
