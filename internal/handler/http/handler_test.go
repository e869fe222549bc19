package http

import (
	"net/http"
	"net/http/httptest"
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
	"github.com/MKhiriev/go-crm-front/models"
)

// mockedServices holds the gomock doubles behind a service.Services.
type mockedServices struct {
	auth     *mock.MockAuthService
	sessions *mock.MockSessionService
	runtime  *mock.MockRuntimeService
	site     *mock.MockSiteService
	appInfo  *mock.MockAppInfoService
}

func newMockedServices(t *testing.T) (*service.Services, *mockedServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &mockedServices{
		auth:     mock.NewMockAuthService(ctrl),
		sessions: mock.NewMockSessionService(ctrl),
		runtime:  mock.NewMockRuntimeService(ctrl),
		site:     mock.NewMockSiteService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	m.site.EXPECT().Path().Return("/nonexistent/config.yaml").AnyTimes()

	return &service.Services{
		AuthService:    m.auth,
		SessionService: m.sessions,
		RuntimeService: m.runtime,
		SiteService:    m.site,
		AppInfoService: m.appInfo,
	}, m
}

func testStructuredConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: testAppConfig,
		Auth: config.Auth{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "go-crm-front",
			TokenDuration: time.Hour,
			LoginPath:     "/session/begin",
		},
		Session: config.Session{
			CookieName:    testCookieName,
			TTL:           time.Hour,
			PurgeInterval: time.Hour,
		},
	}
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs, _ := newMockedServices(t)
	cfg := testStructuredConfig()
	log := logger.Nop()

	h := NewHandler(svcs, registry.New(), cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, cfg.App, h.cfg)
	assert.Equal(t, cfg.Auth, h.authCfg)
	assert.Equal(t, cfg.Session, h.sessionCfg)
	require.NotNil(t, h.front)
	assert.NotNil(t, h.authManager)
}

func TestNewHandler_LoginPathIsRootAbsolute(t *testing.T) {
	svcs, _ := newMockedServices(t)

	h := NewHandler(svcs, registry.New(), testStructuredConfig(), logger.Nop())

	authenticator, ok := h.authManager.(*sessionAuthenticator)
	require.True(t, ok)
	assert.Equal(t, "/crm/session/begin", authenticator.loginPath)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_HealthzOutsideRootPath(t *testing.T) {
	svcs, m := newMockedServices(t)
	m.runtime.EXPECT().Check(gomock.Any()).Return(models.RuntimeStatus{Satisfied: true}, nil)

	router := NewHandler(svcs, registry.New(), testStructuredConfig(), logger.Nop()).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"SERVING"}`, rr.Body.String())
}

func TestInit_HealthzNotServing(t *testing.T) {
	svcs, m := newMockedServices(t)
	m.runtime.EXPECT().Check(gomock.Any()).Return(models.RuntimeStatus{Satisfied: false}, nil)

	router := NewHandler(svcs, registry.New(), testStructuredConfig(), logger.Nop()).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"NOT_SERVING"}`, rr.Body.String())
}

func TestInit_WrongMethodOnFixedRoute(t *testing.T) {
	svcs, _ := newMockedServices(t)

	router := NewHandler(svcs, registry.New(), testStructuredConfig(), logger.Nop()).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/healthz", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET", rr.Header().Get("Allow"))
}

func TestInit_OutsideRootPathIsNotFound(t *testing.T) {
	svcs, _ := newMockedServices(t)

	router := NewHandler(svcs, registry.New(), testStructuredConfig(), logger.Nop()).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/elsewhere", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_UnclaimedPathsReachFrontController(t *testing.T) {
	svcs, m := newMockedServices(t)
	m.sessions.EXPECT().Start(gomock.Any()).
		DoAndReturn(func(any) *models.Session { return models.NewSession("sid", time.Hour) }).AnyTimes()
	m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.runtime.EXPECT().Check(gomock.Any()).Return(models.RuntimeStatus{Satisfied: true}, nil).AnyTimes()
	m.site.EXPECT().Installed(gomock.Any()).Return(false, nil).AnyTimes()

	router := NewHandler(svcs, registry.New(), testStructuredConfig(), logger.Nop()).Init()

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/crm"},
		{http.MethodGet, "/crm/"},
		{http.MethodGet, "/crm/list-events"},
		{http.MethodPost, "/crm/v2/people/edit"},
		{http.MethodPut, "/crm/session/begin"},
	} {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.target, nil))

			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, "/crm/setup", rr.Header().Get("Location"))
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	svcs, m := newMockedServices(t)
	m.runtime.EXPECT().Check(gomock.Any()).Return(models.RuntimeStatus{Satisfied: true}, nil)

	router := NewHandler(svcs, registry.New(), testStructuredConfig(), logger.Nop()).Init()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Trace-ID", "abc-123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get("X-Trace-ID"))
}
