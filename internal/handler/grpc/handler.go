// Package grpc exposes the standard gRPC health service for the front
// controller. The reported status follows the runtime requirement check.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/service"
)

// ServiceName is the health service name reported next to the overall
// ("") status.
const ServiceName = "gocrmfront.FrontController"

// refreshInterval is how often Run re-evaluates the runtime requirement.
const refreshInterval = 30 * time.Second

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger and
// owns the health server registered on the gRPC server. A handler instance
// is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. Every service reports NOT_SERVING until the first [Handler.Refresh].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger.Component("grpc-health"),
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Refresh sets the health status from the runtime requirement check:
// SERVING when it is known and met, NOT_SERVING otherwise.
func (h *Handler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING

	runtime, err := h.services.RuntimeService.Check(ctx)
	switch {
	case err != nil:
		h.logger.Err(err).Msg("runtime requirement cannot be determined")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	case !runtime.Satisfied:
		h.logger.Warn().
			Str("required", runtime.Required).
			Str("running", runtime.Running).
			Msg("runtime below required minimum")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Run refreshes the health status until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) {
	h.Refresh(ctx)

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Refresh(ctx)
		}
	}
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
