package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gatewayauth/internal/common"
	pb "github.com/dmitrijs2005/gatewayauth/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current access token, if any, as a
// bearer credential.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token, _ := s.tokens(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(c.endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewAuthServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

// LoggedIn reports whether the client holds a token pair.
func (s *GRPCClient) LoggedIn() bool {
	access, refresh := s.tokens()
	return access != "" && refresh != ""
}

func (s *GRPCClient) Register(ctx context.Context, userName, password, email string) error {

	req := pb.NewMessage(map[string]string{
		pb.FieldUserName: userName,
		pb.FieldPassword: password,
		pb.FieldEmail:    email,
	})

	if _, err := s.client.Register(ctx, req); err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) Login(ctx context.Context, userName, password string) error {

	req := pb.NewMessage(map[string]string{
		pb.FieldUserName: userName,
		pb.FieldPassword: password,
	})

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(pb.GetString(resp, pb.FieldAccessToken), pb.GetString(resp, pb.FieldRefreshToken))
	return nil

}

// Refresh exchanges the held refresh token for a new access token.
func (s *GRPCClient) Refresh(ctx context.Context) error {

	_, refresh := s.tokens()
	if refresh == "" {
		return ErrNotLoggedIn
	}

	resp, err := s.client.Refresh(ctx, pb.NewMessage(map[string]string{pb.FieldRefreshToken: refresh}))
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(pb.GetString(resp, pb.FieldAccessToken), pb.GetString(resp, pb.FieldRefreshToken))
	return nil

}

// Logout revokes the held refresh token and forgets both tokens.
func (s *GRPCClient) Logout(ctx context.Context) error {

	_, refresh := s.tokens()
	if refresh == "" {
		return ErrNotLoggedIn
	}

	if _, err := s.client.Logout(ctx, pb.NewMessage(map[string]string{pb.FieldRefreshToken: refresh})); err != nil {
		return s.mapError(err)
	}

	s.setTokens("", "")
	return nil

}

func (s *GRPCClient) Me(ctx context.Context) (*Profile, error) {

	resp, err := s.client.Me(ctx, &structpb.Struct{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &Profile{
		UserName: pb.GetString(resp, pb.FieldUserName),
		Email:    pb.GetString(resp, pb.FieldEmail),
		Role:     pb.GetString(resp, pb.FieldRole),
	}, nil

}

func (s *GRPCClient) Ping(ctx context.Context) error {
	if _, err := s.client.Ping(ctx, &structpb.Struct{}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.AlreadyExists:
		return ErrConflict
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
