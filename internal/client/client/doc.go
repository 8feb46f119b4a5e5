// Package client contains the client side of the gateway auth API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register, Login, Refresh, Logout, Me and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, keeps the current access/refresh token pair, injects the
//     bearer credential via an interceptor, and maps gRPC status codes to
//     sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrConflict, ErrInvalidInput.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and timeouts.
package client
