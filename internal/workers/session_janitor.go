// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/service"
)

// SessionJanitor periodically deletes expired sessions from storage.
type SessionJanitor struct {
	sessions service.SessionService
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionJanitor(sessions service.SessionService, interval time.Duration, log *logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		interval: interval,
		logger:   log.Component("session-janitor"),
	}
}

func (j *SessionJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *SessionJanitor) purge(ctx context.Context) {
	removed, err := j.sessions.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Err(err).Msg("purging expired sessions failed")
		}
		return
	}
	if removed > 0 {
		j.logger.Info().Int64("removed", removed).Msg("expired sessions purged")
	}
}
