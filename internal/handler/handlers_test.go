package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-crm-front/internal/config"
	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/mock"
	"github.com/MKhiriev/go-crm-front/internal/registry"
	"github.com/MKhiriev/go-crm-front/internal/service"
)

// newTestServices returns services whose site service answers Path, the
// only call made while handlers are constructed.
func newTestServices(t *testing.T) *service.Services {
	t.Helper()
	ctrl := gomock.NewController(t)
	site := mock.NewMockSiteService(ctrl)
	site.EXPECT().Path().Return("Include/config.yaml").AnyTimes()

	return &service.Services{
		AuthService:    mock.NewMockAuthService(ctrl),
		SessionService: mock.NewMockSessionService(ctrl),
		RuntimeService: mock.NewMockRuntimeService(ctrl),
		SiteService:    site,
		AppInfoService: mock.NewMockAppInfoService(ctrl),
	}
}

func newTestConfig(httpAddress, grpcAddress string) *config.StructuredConfig {
	cfg := config.Defaults()
	cfg.Auth.TokenSignKey = "test-sign-key"
	cfg.Server.HTTPAddress = httpAddress
	cfg.Server.GRPCAddress = grpcAddress
	cfg.Server.RequestTimeout = time.Second
	return cfg
}

// TestNewHandlers_BothAddresses verifies that when both HTTPAddress and
// GRPCAddress are configured, both handlers are initialised and no error is
// returned.
func TestNewHandlers_BothAddresses(t *testing.T) {
	h, err := NewHandlers(newTestServices(t), registry.New(), newTestConfig(":8080", ":9090"), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.NotNil(t, h.GRPC, "expected gRPC handler to be initialised")
}

// TestNewHandlers_OnlyHTTP verifies that when only HTTPAddress is configured,
// the HTTP handler is initialised and the gRPC handler remains nil.
func TestNewHandlers_OnlyHTTP(t *testing.T) {
	h, err := NewHandlers(newTestServices(t), registry.New(), newTestConfig(":8080", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.Nil(t, h.GRPC)
}

// TestNewHandlers_OnlyGRPC verifies that when only GRPCAddress is configured,
// the gRPC handler is initialised and the HTTP handler remains nil.
func TestNewHandlers_OnlyGRPC(t *testing.T) {
	h, err := NewHandlers(newTestServices(t), registry.New(), newTestConfig("", ":9090"), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Nil(t, h.HTTP)
	assert.NotNil(t, h.GRPC)
}

// TestNewHandlers_NoAddresses verifies that when neither address is
// configured, NewHandlers returns errNoTransports.
func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(newTestServices(t), registry.New(), newTestConfig("", ""), logger.Nop())

	require.ErrorIs(t, err, errNoTransports)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	svcs := newTestServices(t)
	cfg := newTestConfig(":8080", ":9090")

	h1, err1 := NewHandlers(svcs, registry.New(), cfg, logger.Nop())
	h2, err2 := NewHandlers(svcs, registry.New(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.GRPC, h2.GRPC)
}
