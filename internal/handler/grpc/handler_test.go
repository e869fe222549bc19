package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/mock"
	"github.com/MKhiriev/go-crm-front/internal/service"
	"github.com/MKhiriev/go-crm-front/models"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockRuntimeService) {
	t.Helper()
	runtime := mock.NewMockRuntimeService(gomock.NewController(t))
	return NewHandler(&service.Services{RuntimeService: runtime}, logger.Nop()), runtime
}

// dialHealth serves h over an in-memory listener and returns a client.
func dialHealth(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	h.Register(s)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestNewHandler_StartsNotServing(t *testing.T) {
	h, _ := newTestHandler(t)
	client := dialHealth(t, h)

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestRefresh_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		runtime models.RuntimeStatus
		err     error
		want    healthpb.HealthCheckResponse_ServingStatus
	}{
		{
			name:    "requirement met",
			runtime: models.RuntimeStatus{Required: "1.22.0", Running: "1.26.0", Satisfied: true},
			want:    healthpb.HealthCheckResponse_SERVING,
		},
		{
			name:    "runtime too old",
			runtime: models.RuntimeStatus{Required: "1.30.0", Running: "1.26.0"},
			want:    healthpb.HealthCheckResponse_NOT_SERVING,
		},
		{
			name: "requirement unknown",
			err:  errors.Join(service.ErrRequirementUnknown, errors.New("no go entry")),
			want: healthpb.HealthCheckResponse_NOT_SERVING,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, runtime := newTestHandler(t)
			runtime.EXPECT().Check(gomock.Any()).Return(tt.runtime, tt.err)
			client := dialHealth(t, h)

			assert.Equal(t, tt.want, h.Refresh(context.Background()))

			for _, name := range []string{"", ServiceName} {
				resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
				require.NoError(t, err)
				assert.Equal(t, tt.want, resp.GetStatus(), "service %q", name)
			}
		})
	}
}

func TestRun_RefreshesUntilCancelled(t *testing.T) {
	h, runtime := newTestHandler(t)
	runtime.EXPECT().Check(gomock.Any()).Return(models.RuntimeStatus{Satisfied: true}, nil).MinTimes(1)
	client := dialHealth(t, h)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestShutdown_ReportsNotServing(t *testing.T) {
	h, runtime := newTestHandler(t)
	runtime.EXPECT().Check(gomock.Any()).Return(models.RuntimeStatus{Satisfied: true}, nil).AnyTimes()
	client := dialHealth(t, h)

	h.Refresh(context.Background())
	h.Shutdown()
	h.Refresh(context.Background())

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
