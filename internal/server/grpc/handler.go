package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/gatewayauth/internal/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func (s *GRPCServer) Register(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	userName := pb.GetString(req, pb.FieldUserName)
	err := s.auth.Register(ctx, userName, pb.GetString(req, pb.FieldPassword), pb.GetString(req, pb.FieldEmail))
	s.metrics.RecordAuth("register", err)

	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "username", userName)
	return pb.NewMessage(map[string]string{pb.FieldStatus: "registered"}), nil

}

func (s *GRPCServer) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	tokens, err := s.auth.Login(ctx, pb.GetString(req, pb.FieldUserName), pb.GetString(req, pb.FieldPassword))
	s.metrics.RecordAuth("login", err)

	if err != nil {
		return nil, toStatus(err)
	}

	return pb.NewMessage(map[string]string{
		pb.FieldAccessToken:  tokens.AccessToken,
		pb.FieldRefreshToken: tokens.RefreshToken,
	}), nil

}

func (s *GRPCServer) Refresh(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	tokens, err := s.auth.Refresh(ctx, pb.GetString(req, pb.FieldRefreshToken))
	s.metrics.RecordAuth("refresh", err)

	if err != nil {
		return nil, toStatus(err)
	}

	return pb.NewMessage(map[string]string{
		pb.FieldAccessToken:  tokens.AccessToken,
		pb.FieldRefreshToken: tokens.RefreshToken,
	}), nil

}

func (s *GRPCServer) Logout(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	err := s.auth.Logout(ctx, pb.GetString(req, pb.FieldRefreshToken), credentialFromContext(ctx))
	s.metrics.RecordAuth("logout", err)

	if err != nil {
		return nil, toStatus(err)
	}

	return pb.NewMessage(map[string]string{pb.FieldStatus: "ok"}), nil

}

func (s *GRPCServer) Me(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	profile, err := s.auth.Identify(ctx, credentialFromContext(ctx))
	s.metrics.RecordAuth("identify", err)

	if err != nil {
		return nil, toStatus(err)
	}

	return pb.NewMessage(map[string]string{
		pb.FieldUserName: profile.UserName,
		pb.FieldEmail:    profile.Email,
		pb.FieldRole:     profile.Role,
	}), nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	return pb.NewMessage(map[string]string{pb.FieldStatus: "OK"}), nil

}
