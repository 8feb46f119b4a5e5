package rest

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/gatewayauth/internal/logging"
	"github.com/dmitrijs2005/gatewayauth/internal/server/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_ServeAndShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(failingAuth{}, telemetry.NewSampler(time.Second, logging.Nop{}), nil, nil)
	s := NewHTTPServer("127.0.0.1:0", time.Second, logging.Nop{}, h, nil)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	url := "http://" + lis.Addr().String() + "/api/v1/gateway/status"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHTTPServer_RunBadAddress(t *testing.T) {
	h := NewHandler(failingAuth{}, telemetry.NewSampler(time.Second, logging.Nop{}), nil, nil)
	s := NewHTTPServer("bad-address", time.Second, logging.Nop{}, h, nil)
	assert.Error(t, s.Run(context.Background()))
}
