package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/gatewayauth/internal/logging"
	pb "github.com/dmitrijs2005/gatewayauth/internal/proto"
	"github.com/dmitrijs2005/gatewayauth/internal/server/config"
	"github.com/dmitrijs2005/gatewayauth/internal/server/metrics"
	"github.com/dmitrijs2005/gatewayauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gatewayauth/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

// startBufServer runs a GRPCServer backed by a real AuthService over an
// in-memory listener and returns a connected client.
func startBufServer(t *testing.T, auth Authenticator, m *metrics.Metrics) pb.AuthServiceClient {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	srv := NewGRPCServer("bufnet", logging.Nop{}, auth, m)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})

	return pb.NewAuthServiceClient(conn)
}

func newAuth() *services.AuthService {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return services.NewAuthService(repomanager.NewInMemoryRepositoryManager(cfg.TokenSize), cfg)
}

func withBearer(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func TestGRPC_EndToEnd(t *testing.T) {
	m := metrics.New("test", nil)
	c := startBufServer(t, newAuth(), m)
	ctx := context.Background()

	resp, err := c.Register(ctx, pb.NewMessage(map[string]string{"username": "alice", "password": "pw1"}))
	require.NoError(t, err)
	assert.Equal(t, "registered", pb.GetString(resp, pb.FieldStatus))

	_, err = c.Register(ctx, pb.NewMessage(map[string]string{"username": "alice", "password": "pw2"}))
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	login, err := c.Login(ctx, pb.NewMessage(map[string]string{"username": "alice", "password": "pw1"}))
	require.NoError(t, err)
	at1 := pb.GetString(login, pb.FieldAccessToken)
	rt1 := pb.GetString(login, pb.FieldRefreshToken)
	assert.Len(t, at1, 48)

	me, err := c.Me(withBearer(ctx, at1), empty())
	require.NoError(t, err)
	assert.Equal(t, "alice", pb.GetString(me, pb.FieldUserName))
	assert.Equal(t, "alice@example.local", pb.GetString(me, pb.FieldEmail))
	assert.Equal(t, "viewer", pb.GetString(me, pb.FieldRole))
	assert.Empty(t, pb.GetString(me, pb.FieldPassword))

	refreshed, err := c.Refresh(ctx, pb.NewMessage(map[string]string{"refreshToken": rt1}))
	require.NoError(t, err)
	assert.Equal(t, rt1, pb.GetString(refreshed, pb.FieldRefreshToken))
	assert.NotEqual(t, at1, pb.GetString(refreshed, pb.FieldAccessToken))

	out, err := c.Logout(withBearer(ctx, at1), pb.NewMessage(map[string]string{"refreshToken": rt1}))
	require.NoError(t, err)
	assert.Equal(t, "ok", pb.GetString(out, pb.FieldStatus))

	_, err = c.Refresh(ctx, pb.NewMessage(map[string]string{"refreshToken": rt1}))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestGRPC_ErrorCodes(t *testing.T) {
	c := startBufServer(t, newAuth(), nil)
	ctx := context.Background()

	_, err := c.Register(ctx, pb.NewMessage(map[string]string{"username": "bob"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Login(ctx, pb.NewMessage(map[string]string{"username": "bob", "password": "x"}))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = c.Me(ctx, empty())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "missing token", status.Convert(err).Message())

	_, err = c.Me(metadata.AppendToOutgoingContext(ctx, "authorization", "Token abc"), empty())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = c.Logout(ctx, pb.NewMessage(map[string]string{"refreshToken": "x"}))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestGRPC_PingAndRequestID(t *testing.T) {
	c := startBufServer(t, newAuth(), nil)

	var header metadata.MD
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-request-id", "req-42")
	resp, err := c.Ping(ctx, empty(), grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, "OK", pb.GetString(resp, pb.FieldStatus))
	assert.Equal(t, []string{"req-42"}, header.Get("x-request-id"))

	header = nil
	_, err = c.Ping(context.Background(), empty(), grpc.Header(&header))
	require.NoError(t, err)
	require.Len(t, header.Get("x-request-id"), 1)
	assert.Len(t, header.Get("x-request-id")[0], 36)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, newAuth(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, newAuth(), nil)
	assert.Error(t, srv.Run(context.Background()))
}
