// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/models"
)

// sessionRepository is the SQL implementation of [SessionRepository].
// Session values are stored as a JSON object in the "data" column.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) GetSession(ctx context.Context, id string) (*models.Session, error) {
	query, args, err := buildGetSessionQuery(r.db.builder, id)
	if err != nil {
		return nil, err
	}

	var (
		session models.Session
		data    string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.ID, &data, scanTime{&session.ExpiresAt})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.GetSession").Msg("error selecting session")
		return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	session.Values = make(map[string]string)
	if data != "" {
		if err = json.Unmarshal([]byte(data), &session.Values); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncodingSession, err)
		}
	}

	return &session, nil
}

func (r *sessionRepository) SaveSession(ctx context.Context, session *models.Session) error {
	values := session.Values
	if values == nil {
		values = map[string]string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodingSession, err)
	}

	query, args, err := buildSaveSessionQuery(r.db.builder, session.ID, string(data), session.ExpiresAt)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, id string) error {
	query, args, err := buildDeleteSessionQuery(r.db.builder, id)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredSessionsQuery(r.db.builder, now)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error purging sessions")
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return n, nil
}
