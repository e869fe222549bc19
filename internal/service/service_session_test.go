package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-crm-front/internal/config"
	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/mock"
	"github.com/MKhiriev/go-crm-front/internal/store"
	"github.com/MKhiriev/go-crm-front/internal/utils"
	"github.com/MKhiriev/go-crm-front/models"
)

var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (*sessionService, *mock.MockSessionRepository) {
	t.Helper()
	repo := mock.NewMockSessionRepository(ctrl)
	svc := NewSessionService(repo, config.Session{TTL: time.Hour}, logger.Nop()).(*sessionService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func TestSessionService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestSessionSvc(t, ctrl)

	s := svc.Start(context.Background())

	assert.True(t, utils.IsUUID(s.ID))
	assert.Equal(t, fixedNow.Add(time.Hour), s.ExpiresAt)
	assert.False(t, s.Dirty())
	assert.Empty(t, s.Values)
}

func TestSessionService_Load_RejectsMalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestSessionSvc(t, ctrl)

	_, err := svc.Load(context.Background(), "'; DROP TABLE sessions; --")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_Load(t *testing.T) {
	id := utils.NewUUIDGenerator().Generate()

	tests := []struct {
		name    string
		setup   func(repo *mock.MockSessionRepository)
		wantErr error
	}{
		{
			name: "live session",
			setup: func(repo *mock.MockSessionRepository) {
				repo.EXPECT().GetSession(gomock.Any(), id).
					Return(&models.Session{ID: id, ExpiresAt: fixedNow.Add(time.Minute)}, nil)
			},
		},
		{
			name: "unknown session",
			setup: func(repo *mock.MockSessionRepository) {
				repo.EXPECT().GetSession(gomock.Any(), id).Return(nil, store.ErrSessionNotFound)
			},
			wantErr: ErrSessionNotFound,
		},
		{
			name: "expired session is deleted",
			setup: func(repo *mock.MockSessionRepository) {
				repo.EXPECT().GetSession(gomock.Any(), id).
					Return(&models.Session{ID: id, ExpiresAt: fixedNow.Add(-time.Minute)}, nil)
				repo.EXPECT().DeleteSession(gomock.Any(), id).Return(nil)
			},
			wantErr: ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestSessionSvc(t, ctrl)
			tt.setup(repo)

			s, err := svc.Load(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, s.ID)
		})
	}
}

func TestSessionService_Load_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	id := utils.NewUUIDGenerator().Generate()

	repo.EXPECT().GetSession(gomock.Any(), id).Return(nil, errors.New("io"))

	_, err := svc.Load(context.Background(), id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)

	s := &models.Session{ID: "sid", Values: map[string]string{}}

	// unchanged session is not written
	require.NoError(t, svc.Save(context.Background(), s))

	s.Set(models.SessionKeyLocation, "/crm/ListEvents.php")
	repo.EXPECT().SaveSession(gomock.Any(), s).Return(nil)

	require.NoError(t, svc.Save(context.Background(), s))
	assert.False(t, s.Dirty())
	assert.Equal(t, fixedNow.Add(time.Hour), s.ExpiresAt)
}

func TestSessionService_Renew(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)

	s := svc.Start(context.Background())
	s.Set(models.SessionKeyLocation, "/crm/ListEvents.php")
	oldID := s.ID
	s.MarkClean()

	repo.EXPECT().DeleteSession(gomock.Any(), oldID).Return(nil)

	require.NoError(t, svc.Renew(context.Background(), s))

	assert.NotEqual(t, oldID, s.ID)
	assert.True(t, utils.IsUUID(s.ID))
	assert.True(t, s.Dirty())
	v, _ := s.Get(models.SessionKeyLocation)
	assert.Equal(t, "/crm/ListEvents.php", v)
}

func TestSessionService_Renew_DeleteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)

	s := svc.Start(context.Background())
	repo.EXPECT().DeleteSession(gomock.Any(), s.ID).Return(store.ErrExecutingQuery)

	err := svc.Renew(context.Background(), s)

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestSessionService_DestroyAndPurge(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)

	repo.EXPECT().DeleteSession(gomock.Any(), "sid").Return(nil)
	repo.EXPECT().DeleteExpiredSessions(gomock.Any(), fixedNow).Return(int64(3), nil)

	require.NoError(t, svc.Destroy(context.Background(), "sid"))

	n, err := svc.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
