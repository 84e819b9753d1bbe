//go:build !integration

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Liveness(t *testing.T) {
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	openBreaker := func() *circuitbreaker.CircuitBreaker {
		cb := circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute, Name: "registry"})
		_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
		return cb
	}

	tests := []struct {
		name           string
		setupHandler   func() *HealthHandler
		expectedStatus int
		expectedChecks map[string]interface{}
	}{
		{
			name:           "no checkers",
			setupHandler:   NewHealthHandler,
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
		{
			name: "healthy circuit breaker",
			setupHandler: func() *HealthHandler {
				h := NewHealthHandler()
				h.RegisterCircuitBreaker("registry", circuitbreaker.New(circuitbreaker.DefaultConfig()))
				return h
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"registry_circuit": "closed"},
		},
		{
			name: "open circuit breaker",
			setupHandler: func() *HealthHandler {
				h := NewHealthHandler()
				h.RegisterCircuitBreaker("registry", openBreaker())
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"registry_circuit": "open"},
		},
		{
			name: "healthy checker",
			setupHandler: func() *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("mongodb", HealthCheckFunc(func(context.Context) error { return nil }))
				return h
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"mongodb": "ok"},
		},
		{
			name: "failing checker",
			setupHandler: func() *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("mongodb", HealthCheckFunc(func(context.Context) error { return errors.New("no primary") }))
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"mongodb": "no primary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			tt.setupHandler().Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body struct {
				Status string                 `json:"status"`
				Checks map[string]interface{} `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedChecks, body.Checks)
		})
	}
}
