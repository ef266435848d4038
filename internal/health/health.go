// Package health serves the standard gRPC health protocol for the blog's dependencies.
package health

import (
	"context"
	"net"
	"time"

	"github.com/sbilibin2017/gw-blog/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// CheckFunc reports whether a dependency is usable.
type CheckFunc func(ctx context.Context) error

// Server reports SERVING for each named check that passes, and for the
// overall ("") service while all of them pass.
type Server struct {
	address  string
	interval time.Duration
	checks   map[string]CheckFunc
	health   *health.Server
}

// NewServer creates a health server. Checks run every interval.
func NewServer(address string, interval time.Duration, checks map[string]CheckFunc) *Server {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Server{
		address:  address,
		interval: interval,
		checks:   checks,
		health:   health.NewServer(),
	}
}

// Check runs every check once and publishes the result.
func (s *Server) Check(ctx context.Context) {
	overall := healthpb.HealthCheckResponse_SERVING
	for name, check := range s.checks {
		cctx, cancel := context.WithTimeout(ctx, s.interval)
		err := check(cctx)
		cancel()

		status := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			logger.Log.Warnw("health check failed", "check", name, "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
			overall = healthpb.HealthCheckResponse_NOT_SERVING
		}
		s.health.SetServingStatus(name, status)
	}
	s.health.SetServingStatus("", overall)
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	logger.Log.Infow("starting gRPC health server", "address", s.address)
	return s.Serve(ctx, lis)
}

// Serve serves on lis until ctx is done.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, s.health)

	s.Check(ctx)
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.health.Shutdown()
				srv.GracefulStop()
				return
			case <-ticker.C:
				s.Check(ctx)
			}
		}
	}()

	return srv.Serve(lis)
}
