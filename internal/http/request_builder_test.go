//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/domain/dto"
	"github.com/guttosm/mvr-resolver/internal/i18n"
	"github.com/guttosm/mvr-resolver/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(string(middleware.RequestIDKey), "req-1")
	return c, w
}

func TestBuildRequestAndValidate(t *testing.T) {
	tooMany, err := json.Marshal(dto.ResolveNamesRequest{Names: make([]string, dto.MaxBatchNames+1)})
	require.NoError(t, err)

	tests := []struct {
		name        string
		body        string
		expectedErr error
		expected    []string
	}{
		{name: "valid request", body: `{"names": ["@a/b"]}`, expected: []string{"@a/b"}},
		{name: "empty list is valid", body: `{"names": []}`, expected: []string{}},
		{name: "fails validation", body: string(tooMany), expectedErr: dto.ErrTooManyNames},
		{name: "missing field", body: `{}`},
		{name: "invalid JSON", body: `{"names": [}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, tt.body)

			req, err := BuildRequestAndValidate[dto.ResolveNamesRequest](c)

			if tt.expected == nil {
				require.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req.Names)
		})
	}
}

func TestResponseBuilder_Success(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "")

	NewResponseBuilder(c).SuccessOK(dto.CleanupResponse{Removed: 2})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data      dto.CleanupResponse `json:"data"`
		RequestID string              `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Removed)
	assert.Equal(t, "req-1", resp.RequestID)
}

func TestResponseBuilder_Error(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "")
	cause := errors.New("registry down")

	NewResponseBuilder(c).
		Detail("kind", "server_error").
		Detail("name", "").
		Error(http.StatusBadGateway, i18n.ErrKeyRegistryError, cause)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
	assert.Equal(t, cause, c.Errors.Last().Err)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeUpstream, resp.Error)
	assert.Equal(t, map[string]string{"kind": "server_error"}, resp.Details)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.NotEmpty(t, resp.Message)
}

func TestPooledResponsesAreReset(t *testing.T) {
	resp := getErrorResponse()
	resp.Error = "x"
	resp.Details = map[string]string{"a": "b"}
	putErrorResponse(resp)

	again := getErrorResponse()
	assert.Empty(t, again.Error)
	assert.Nil(t, again.Details)
	putErrorResponse(again)
}
