// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-crm-front/internal/config"
	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/mock"
	"github.com/MKhiriev/go-crm-front/internal/service"
)

// blockingWorker counts Run calls and returns once ctx is cancelled.
type blockingWorker struct {
	runCount atomic.Int32
}

func (w *blockingWorker) Run(ctx context.Context) {
	w.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should return immediately without workers
	(&Workers{}).Run(context.Background())
}

func TestNewWorkers_RegistersSessionJanitor(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{SessionService: mock.NewMockSessionService(ctrl)}

	ws := NewWorkers(services, config.Session{PurgeInterval: time.Minute}, logger.Nop())

	assert.Len(t, ws.workers, 1)
	assert.IsType(t, &SessionJanitor{}, ws.workers[0])
}

func TestSessionJanitor_PurgesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	sessions.EXPECT().PurgeExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		if calls.Add(1) == 2 {
			cancel()
		}
		return 1, nil
	}).MinTimes(2)

	done := make(chan struct{})
	go func() {
		NewSessionJanitor(sessions, 5*time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestSessionJanitor_KeepsRunningAfterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		sessions.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), errors.New("database is locked")),
		sessions.EXPECT().PurgeExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
			cancel()
			return 0, nil
		}),
	)
	sessions.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), nil).AnyTimes()

	done := make(chan struct{})
	go func() {
		NewSessionJanitor(sessions, 5*time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}
