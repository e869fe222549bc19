package service

import (
	"context"
	"fmt"
	"runtime"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/manifest"
	"github.com/MKhiriev/go-crm-front/models"
)

// runtimeService reads the manifest on every Check so that an operator can
// fix a broken manifest without restarting.
type runtimeService struct {
	manifestPath string
	version      func() string
	logger       *logger.Logger
}

func NewRuntimeService(manifestPath string, logger *logger.Logger) RuntimeService {
	return &runtimeService{
		manifestPath: manifestPath,
		version:      runtime.Version,
		logger:       logger,
	}
}

// Check returns ErrRequirementUnknown (wrapping the manifest error) when the
// manifest declares no usable minimum. A running version that cannot be
// parsed, such as a development toolchain, is reported as satisfied.
func (s *runtimeService) Check(ctx context.Context) (models.RuntimeStatus, error) {
	req, err := manifest.RequiredRuntime(s.manifestPath)
	if err != nil {
		return models.RuntimeStatus{}, fmt.Errorf("%w: %w", ErrRequirementUnknown, err)
	}

	raw := s.version()
	status := models.RuntimeStatus{
		Constraint: req.Raw,
		Required:   req.Minimum.String(),
		Running:    raw,
		Satisfied:  true,
	}

	running, err := manifest.ParseRuntimeVersion(raw)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("version", raw).Msg("running version is not comparable, skipping check")
		return status, nil
	}

	status.Running = running.String()
	status.Satisfied = req.Constraint.Check(running)

	return status, nil
}
