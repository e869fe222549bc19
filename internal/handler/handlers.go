package handler

import (
	"github.com/MKhiriev/go-crm-front/internal/config"
	"github.com/MKhiriev/go-crm-front/internal/handler/grpc"
	"github.com/MKhiriev/go-crm-front/internal/handler/http"
	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/registry"
	"github.com/MKhiriev/go-crm-front/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured listen
// address. The registry is used by the HTTP front controller only.
func NewHandlers(services *service.Services, reg *registry.Registry, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, reg, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransports
	}

	return handlers, nil
}
