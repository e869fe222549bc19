// Package utils provides general-purpose helpers used across the
// application: typed context keys, case conversion of request names,
// JWT generation and validation, JSON responses, UUIDs and the outbound
// HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-crm-front/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user id (int64).
	UserIDCtxKey = contextKey("userID")
	// UsernameCtxKey stores the authenticated user name (string).
	UsernameCtxKey = contextKey("username")
	// SessionCtxKey stores the visitor session (*models.Session).
	SessionCtxKey = contextKey("session")
	// SiteConfigCtxKey stores the loaded site configuration (models.SiteConfig).
	SiteConfigCtxKey = contextKey("siteConfig")
)

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUsernameFromContext retrieves the authenticated user name.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, userID int64, username string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, UsernameCtxKey, username)
}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the visitor session. A nil session is
// reported as missing.
func GetSessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(*models.Session)
	return session, ok && session != nil
}

// WithSiteConfig returns a copy of ctx carrying the site configuration.
func WithSiteConfig(ctx context.Context, cfg models.SiteConfig) context.Context {
	return context.WithValue(ctx, SiteConfigCtxKey, cfg)
}

// GetSiteConfigFromContext retrieves the site configuration.
func GetSiteConfigFromContext(ctx context.Context) (models.SiteConfig, bool) {
	cfg, ok := ctx.Value(SiteConfigCtxKey).(models.SiteConfig)
	return cfg, ok
}
