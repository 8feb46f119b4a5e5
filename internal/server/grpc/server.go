package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gatewayauth/internal/logging"
	pb "github.com/dmitrijs2005/gatewayauth/internal/proto"
	"github.com/dmitrijs2005/gatewayauth/internal/server/metrics"
	"github.com/dmitrijs2005/gatewayauth/internal/server/models"
	"google.golang.org/grpc"
)

// Authenticator is the subset of the auth service the façade calls.
type Authenticator interface {
	Register(ctx context.Context, userName, password, email string) error
	Login(ctx context.Context, userName, password string) (*models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Logout(ctx context.Context, refreshToken, credential string) error
	Identify(ctx context.Context, credential string) (*models.Profile, error)
}

type GRPCServer struct {
	address string
	auth    Authenticator
	logger  logging.Logger
	metrics *metrics.Metrics
}

func NewGRPCServer(a string, l logging.Logger, auth Authenticator, m *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    auth,
		metrics: m,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestIDInterceptor,
		s.loggingInterceptor,
		s.accessTokenInterceptor,
	))

	// registers service
	pb.RegisterAuthServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
