// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func okWith(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(status) }
}

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/setup", okWith(http.StatusOK))
	router.Post("/setup", okWith(http.StatusFound))
	router.Get("/v2/dashboard", okWith(http.StatusOK))
	router.Post("/session/end", okWith(http.StatusFound))
	router.Get("/session/end", okWith(http.StatusFound))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedAllow  string
	}{
		{
			name:           "GET /setup is served",
			method:         http.MethodGet,
			path:           "/setup",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "POST /setup is served",
			method:         http.MethodPost,
			path:           "/setup",
			expectedStatus: http.StatusFound,
		},
		{
			name:           "DELETE /setup lists both methods",
			method:         http.MethodDelete,
			path:           "/setup",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET, POST",
		},
		{
			name:           "POST /v2/dashboard",
			method:         http.MethodPost,
			path:           "/v2/dashboard",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET",
		},
		{
			name:           "PUT /session/end",
			method:         http.MethodPut,
			path:           "/session/end",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET, POST",
		},
		{
			name:           "unknown route",
			method:         http.MethodGet,
			path:           "/nowhere",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedAllow, rr.Header().Get("Allow"))
		})
	}
}

// Patterns are compared relative to the mount point.
func TestCheckHTTPMethod_MountedRouter(t *testing.T) {
	app := chi.NewRouter()
	app.Get("/v2/dashboard", okWith(http.StatusOK))
	app.MethodNotAllowed(CheckHTTPMethod(app))

	root := chi.NewRouter()
	root.Mount("/crm", app)

	req := httptest.NewRequest(http.MethodPost, "/crm/v2/dashboard", nil)
	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET", rr.Header().Get("Allow"))
}

func TestCheckHTTPMethod_Direct_UnknownPattern(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/setup", okWith(http.StatusOK))

	rr := httptest.NewRecorder()
	CheckHTTPMethod(router)(rr, httptest.NewRequest(http.MethodGet, "/other", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Header().Get("Allow"))
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()
	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func(i int) {
			method := http.MethodGet
			if i%2 == 1 {
				method = http.MethodDelete
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/setup", nil))
			done <- rr.Code
		}(i)
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.True(t, code == http.StatusOK || code == http.StatusMethodNotAllowed,
			"unexpected status code: %d", code)
	}
}
