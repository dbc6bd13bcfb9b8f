// Package healthcheck serves the standard gRPC health protocol.
package healthcheck

import (
	"context"
	"net"

	"github.com/sbilibin2017/gw-training-log/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported alongside the overall ("") status.
const ServiceName = "training-log"

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server is a gRPC server exposing only grpc.health.v1.Health.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
}

// NewServer creates a health server. Every service starts as NOT_SERVING.
func NewServer() *Server {
	s := &Server{
		grpc:   grpc.NewServer(),
		health: health.NewServer(),
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.SetServing(false)
	return s
}

// SetServing switches the reported status of the service.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Probe pings the store and updates the status with the result.
func (s *Server) Probe(ctx context.Context, p Pinger) bool {
	if p == nil {
		s.SetServing(false)
		return false
	}
	if err := p.PingContext(ctx); err != nil {
		logger.Log.Warnw("store ping failed, reporting NOT_SERVING", "error", err)
		s.SetServing(false)
		return false
	}
	s.SetServing(true)
	return true
}

// Serve accepts connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	logger.Log.Infow("gRPC health server started", "addr", lis.Addr().String())
	return s.grpc.Serve(lis)
}

// Stop marks every service NOT_SERVING and stops the server gracefully.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
