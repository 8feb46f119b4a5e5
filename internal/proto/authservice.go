// Package proto declares the gatewayauth.v1.AuthService gRPC contract. Every
// method takes and returns a google.protobuf.Struct whose fields are named by
// the Field* constants.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "gatewayauth.v1.AuthService"

// Full method names.
const (
	AuthService_Register_FullMethodName = "/" + ServiceName + "/Register"
	AuthService_Login_FullMethodName    = "/" + ServiceName + "/Login"
	AuthService_Refresh_FullMethodName  = "/" + ServiceName + "/Refresh"
	AuthService_Logout_FullMethodName   = "/" + ServiceName + "/Logout"
	AuthService_Me_FullMethodName       = "/" + ServiceName + "/Me"
	AuthService_Ping_FullMethodName     = "/" + ServiceName + "/Ping"
)

// Message field names.
const (
	FieldUserName     = "username"
	FieldPassword     = "password"
	FieldEmail        = "email"
	FieldRole         = "role"
	FieldAccessToken  = "accessToken"
	FieldRefreshToken = "refreshToken"
	FieldStatus       = "status"
)

// AuthServiceServer is the server API for AuthService.
type AuthServiceServer interface {
	Register(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Refresh(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Logout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Me(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type serverMethod func(AuthServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call serverMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AuthServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AuthServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AuthService_ServiceDesc is the grpc.ServiceDesc for AuthService.
var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unaryHandler(AuthService_Register_FullMethodName, AuthServiceServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(AuthService_Login_FullMethodName, AuthServiceServer.Login)},
		{MethodName: "Refresh", Handler: unaryHandler(AuthService_Refresh_FullMethodName, AuthServiceServer.Refresh)},
		{MethodName: "Logout", Handler: unaryHandler(AuthService_Logout_FullMethodName, AuthServiceServer.Logout)},
		{MethodName: "Me", Handler: unaryHandler(AuthService_Me_FullMethodName, AuthServiceServer.Me)},
		{MethodName: "Ping", Handler: unaryHandler(AuthService_Ping_FullMethodName, AuthServiceServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gatewayauth/v1/auth.proto",
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

// AuthServiceClient is the client API for AuthService.
type AuthServiceClient interface {
	Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Refresh(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Logout(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Me(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc}
}

func (c *authServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AuthService_Register_FullMethodName, in, opts)
}

func (c *authServiceClient) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AuthService_Login_FullMethodName, in, opts)
}

func (c *authServiceClient) Refresh(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AuthService_Refresh_FullMethodName, in, opts)
}

func (c *authServiceClient) Logout(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AuthService_Logout_FullMethodName, in, opts)
}

func (c *authServiceClient) Me(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AuthService_Me_FullMethodName, in, opts)
}

func (c *authServiceClient) Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AuthService_Ping_FullMethodName, in, opts)
}
