// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-crm-front/internal/config"
	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/store"
	"github.com/MKhiriev/go-crm-front/internal/utils"
	"github.com/MKhiriev/go-crm-front/models"
)

type sessionService struct {
	repository store.SessionRepository
	ids        *utils.UUIDGenerator
	ttl        time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

func NewSessionService(repository store.SessionRepository, cfg config.Session, logger *logger.Logger) SessionService {
	return &sessionService{
		repository: repository,
		ids:        utils.NewUUIDGenerator(),
		ttl:        cfg.TTL,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *sessionService) Start(ctx context.Context) *models.Session {
	session := models.NewSession(s.ids.Generate(), s.ttl)
	session.ExpiresAt = s.now().Add(s.ttl)
	return session
}

func (s *sessionService) Load(ctx context.Context, id string) (*models.Session, error) {
	if !utils.IsUUID(id) {
		return nil, ErrSessionNotFound
	}

	session, err := s.repository.GetSession(ctx, id)
	if errors.Is(err, store.ErrSessionNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	if session.Expired(s.now()) {
		if err = s.repository.DeleteSession(ctx, id); err != nil {
			logger.FromContext(ctx).Err(err).Str("session", id).Msg("error deleting expired session")
		}
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// Save writes the session when it changed and extends its lifetime.
func (s *sessionService) Save(ctx context.Context, session *models.Session) error {
	if !session.Dirty() {
		return nil
	}

	session.ExpiresAt = s.now().Add(s.ttl)
	if err := s.repository.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	session.MarkClean()

	return nil
}

func (s *sessionService) Renew(ctx context.Context, session *models.Session) error {
	oldID := session.ID
	session.Rotate(s.ids.Generate())

	if err := s.repository.DeleteSession(ctx, oldID); err != nil {
		return fmt.Errorf("error renewing session: %w", err)
	}
	return nil
}

func (s *sessionService) Destroy(ctx context.Context, id string) error {
	if err := s.repository.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("error destroying session: %w", err)
	}
	return nil
}

func (s *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repository.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("error purging sessions: %w", err)
	}
	return n, nil
}
