package store

import "github.com/MKhiriev/go-crm-front/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
	}
}
