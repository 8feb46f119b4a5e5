package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/gatewayauth/internal/common"
	"github.com/dmitrijs2005/gatewayauth/internal/logging"
	pb "github.com/dmitrijs2005/gatewayauth/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

// CredentialKey holds the raw authorization value for methods that need one.
const CredentialKey ctxKey = "credential"

var requestIDMetadataKey = strings.ToLower(common.RequestIDHeaderName)

// authenticatedMethods read a bearer credential from metadata.
var authenticatedMethods = map[string]bool{
	pb.AuthService_Logout_FullMethodName: true,
	pb.AuthService_Me_FullMethodName:     true,
}

func firstMetadataValue(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	id := firstMetadataValue(ctx, requestIDMetadataKey)
	if id == "" {
		id = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDMetadataKey, id))

	return handler(logging.ContextWithRequestID(ctx, id), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	start := time.Now()
	resp, err := handler(ctx, req)
	elapsed := time.Since(start)

	code := status.Code(err)
	s.metrics.ObserveGRPC(info.FullMethod, code.String(), elapsed)

	args := []any{"method", info.FullMethod, "code", code.String(), "duration", elapsed.String()}
	switch code {
	case codes.OK:
		s.logger.Info(ctx, "rpc served", args...)
	case codes.Internal, codes.Unknown:
		s.logger.Error(ctx, "rpc failed", append(args, "error", err.Error())...)
	default:
		s.logger.Warn(ctx, "rpc rejected", args...)
	}

	return resp, err
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if authenticatedMethods[info.FullMethod] {

		credential := firstMetadataValue(ctx, common.AuthorizationHeaderName)
		if len(credential) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		ctx = context.WithValue(ctx, CredentialKey, credential)
	}

	return handler(ctx, req)
}

func credentialFromContext(ctx context.Context) string {
	v, _ := ctx.Value(CredentialKey).(string)
	return v
}
