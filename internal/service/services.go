package service

import (
	"fmt"

	"github.com/MKhiriev/go-crm-front/internal/config"
	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/siteconfig"
	"github.com/MKhiriev/go-crm-front/internal/store"
	"github.com/MKhiriev/go-crm-front/models"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	RuntimeService RuntimeService
	SiteService    SiteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(storages.UserRepository, cfg.Auth, logger)

	return &Services{
		AuthService:    authService,
		SessionService: NewSessionService(storages.SessionRepository, cfg.Session, logger),
		RuntimeService: NewRuntimeService(cfg.App.ManifestPath, logger),
		SiteService:    NewSiteService(siteconfig.New(cfg.App.SiteConfigPath), authService, logger),
		AppInfoService: appInfoService,
	}, nil
}
