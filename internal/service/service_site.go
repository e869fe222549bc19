package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/siteconfig"
	"github.com/MKhiriev/go-crm-front/internal/validators"
	"github.com/MKhiriev/go-crm-front/models"
)

type siteService struct {
	file        *siteconfig.File
	authService AuthService
	validator   validators.Validator
	logger      *logger.Logger
}

func NewSiteService(file *siteconfig.File, authService AuthService, logger *logger.Logger) SiteService {
	return &siteService{
		file:        file,
		authService: authService,
		validator:   validators.NewUserValidator(),
		logger:      logger,
	}
}

func (s *siteService) Path() string {
	return s.file.Path()
}

func (s *siteService) Installed(ctx context.Context) (bool, error) {
	return s.file.Exists()
}

func (s *siteService) Load(ctx context.Context) (models.SiteConfig, error) {
	cfg, err := s.file.Load()
	if errors.Is(err, siteconfig.ErrNotInstalled) {
		return models.SiteConfig{}, ErrNotInstalled
	}
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("error loading site configuration: %w", err)
	}
	return cfg, nil
}

// Install writes the site configuration and creates the administrator.
// If the administrator cannot be created the configuration file is removed
// again so the installer can be retried.
func (s *siteService) Install(ctx context.Context, site models.SiteConfig, admin models.User) (models.SiteConfig, error) {
	log := logger.FromContext(ctx)

	admin.Username = strings.TrimSpace(admin.Username)
	if err := s.validator.Validate(ctx, admin); err != nil {
		return models.SiteConfig{}, validationError(err)
	}

	site, err := siteconfig.Normalize(site)
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := s.file.Create(site)
	if errors.Is(err, siteconfig.ErrAlreadyInstalled) {
		return models.SiteConfig{}, ErrAlreadyInstalled
	}
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("error writing site configuration: %w", err)
	}

	if _, err = s.authService.CreateAdmin(ctx, admin.Username, admin.Password); err != nil {
		if rmErr := s.file.Remove(); rmErr != nil {
			log.Err(rmErr).Msg("error rolling back site configuration")
		}
		return models.SiteConfig{}, err
	}

	log.Info().Str("site", saved.SiteName).Str("admin", admin.Username).Msg("site installed")
	return saved, nil
}
