//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-crm-front/models"
)

// UserRepository persists operator accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns ErrNoUserWasFound when nothing matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// CountUsers returns the number of stored accounts.
	CountUsers(ctx context.Context) (int, error)
}

// SessionRepository persists visitor sessions.
type SessionRepository interface {
	// GetSession returns ErrSessionNotFound when id is unknown.
	GetSession(ctx context.Context, id string) (*models.Session, error)
	// SaveSession inserts or replaces the session.
	SaveSession(ctx context.Context, session *models.Session) error
	// DeleteSession removes the session; unknown ids are not an error.
	DeleteSession(ctx context.Context, id string) error
	// DeleteExpiredSessions removes sessions expired at now and reports how
	// many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator recognizes driver-specific errors.
type ErrorClassificator interface {
	IsUniqueViolation(err error) bool
}
