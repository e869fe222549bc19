package http

import (
	"html/template"

	"github.com/MKhiriev/go-crm-front/internal/config"
	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/registry"
	"github.com/MKhiriev/go-crm-front/internal/service"
)

var views = template.Must(template.ParseFS(templatesFS,
	"templates/layout.html",
	"templates/login.html",
	"templates/setup.html",
	"templates/runtime_error.html",
	"templates/dashboard.html",
))

type Handler struct {
	services *service.Services

	cfg        config.App
	authCfg    config.Auth
	sessionCfg config.Session

	authManager AuthenticationManager
	front       *FrontController

	logger *logger.Logger
}

func NewHandler(services *service.Services, reg *registry.Registry, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	authManager := newSessionAuthenticator(services.AuthService, cfg.App.RootPath+cfg.Auth.LoginPath)
	front := NewFrontController(
		services.RuntimeService,
		services.SiteService,
		authManager,
		reg,
		NewDiagnosticReporter(cfg.App.DebugFormat, services.SiteService.Path()),
		cfg.App,
	)

	logger.Info().Int("registered", reg.Len()).Msg("http handler created")
	return &Handler{
		services:    services,
		cfg:         cfg.App,
		authCfg:     cfg.Auth,
		sessionCfg:  cfg.Session,
		authManager: authManager,
		front:       front,
		logger:      logger,
	}
}
