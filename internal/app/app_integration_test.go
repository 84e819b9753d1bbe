//go:build integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	cfg.Database = integrationDatabaseConfig(t)

	a, err := InitializeApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, a.auditLogger, "audit logger is wired when MongoDB is reachable")

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
	assert.Contains(t, w.Body.String(), `"mongodb_audit_circuit":"closed"`)

	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/audit", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, a.Close(context.Background()))
	assert.NoError(t, a.Close(context.Background()))
}

func TestInitializeApp_Integration_DatabaseDown(t *testing.T) {
	cfg := testConfig()
	cfg.Database = integrationDatabaseConfig(t)
	cfg.Database.URI = "mongodb://127.0.0.1:1"

	a, err := InitializeApp(cfg)
	require.NoError(t, err, "the resolver serves without an audit log")
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	assert.Nil(t, a.auditLogger)
}
