//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock
package service

import (
	"context"

	"github.com/MKhiriev/go-crm-front/models"
)

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CreateAdmin(ctx context.Context, username, password string) (models.User, error)
}

// SessionService loads and persists visitor sessions.
type SessionService interface {
	// Start returns a fresh, unsaved session with a new id.
	Start(ctx context.Context) *models.Session
	// Load returns ErrSessionNotFound for unknown, malformed or expired ids.
	Load(ctx context.Context, id string) (*models.Session, error)
	// Save persists the session if it changed.
	Save(ctx context.Context, session *models.Session) error
	// Renew moves the session to a fresh id and deletes the row stored under
	// the old one. Called when the visitor's privileges change.
	Renew(ctx context.Context, session *models.Session) error
	Destroy(ctx context.Context, id string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

// RuntimeService compares the running Go version with the manifest.
type RuntimeService interface {
	Check(ctx context.Context) (models.RuntimeStatus, error)
}

// SiteService manages the site configuration and the installation flow.
type SiteService interface {
	Installed(ctx context.Context) (bool, error)
	Load(ctx context.Context) (models.SiteConfig, error)
	Install(ctx context.Context, site models.SiteConfig, admin models.User) (models.SiteConfig, error)
	Path() string
}

// AppInfoService reports version and build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}
