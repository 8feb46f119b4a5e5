package grpc

import (
	"errors"

	"github.com/dmitrijs2005/gatewayauth/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps a service error to a gRPC status. Internal failures never
// expose the underlying error text.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorConflict):
		return status.Error(codes.AlreadyExists, "username already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
