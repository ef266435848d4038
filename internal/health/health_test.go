package health

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func TestServer(t *testing.T) {
	var redisDown atomic.Bool
	checks := map[string]CheckFunc{
		"postgres": func(ctx context.Context) error { return nil },
		"redis": func(ctx context.Context) error {
			if redisDown.Load() {
				return errors.New("connection refused")
			}
			return nil
		},
	}
	srv := NewServer("", time.Hour, checks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lis := bufconn.Listen(1024 * 1024)
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	status := func(service string) healthpb.HealthCheckResponse_ServingStatus {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		require.NoError(t, err)
		return resp.Status
	}

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status("redis"))

	redisDown.Store(true)
	srv.Check(ctx)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status("redis"))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status("postgres"))

	cancel()
	select {
	case <-served:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
