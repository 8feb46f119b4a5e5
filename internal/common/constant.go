package common

// AuthorizationHeaderName is the HTTP header and gRPC metadata key carrying
// the bearer credential. gRPC metadata keys are lower case, HTTP headers are
// matched case-insensitively.
const AuthorizationHeaderName = "authorization"

// BearerPrefix is the scheme prefix every bearer credential must start with.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries the per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"
