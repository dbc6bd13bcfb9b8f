package facades

import (
	"context"

	"github.com/sbilibin2017/gw-training-log/internal/logger"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthGRPCFacade queries a gRPC health service.
type HealthGRPCFacade struct {
	client healthpb.HealthClient
}

// NewHealthGRPCFacade creates a new facade with a gRPC health client.
func NewHealthGRPCFacade(client healthpb.HealthClient) *HealthGRPCFacade {
	return &HealthGRPCFacade{client: client}
}

// IsServing reports whether the named service is SERVING. An empty service
// name asks for the overall server status.
func (f *HealthGRPCFacade) IsServing(ctx context.Context, service string) (bool, error) {
	resp, err := f.client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		logger.Log.Errorw("failed to check health via gRPC", "service", service, "error", err)
		return false, err
	}

	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}
