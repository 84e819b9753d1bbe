//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompression(t *testing.T) {
	payload := strings.Repeat("0x00000000000000000000000000000000000000000000000000000000000000c0 ", 50)

	tests := []struct {
		name             string
		path             string
		acceptEncoding   string
		expectCompressed bool
	}{
		{name: "compresses when client accepts gzip", path: "/api/v1/resolve/package/x", acceptEncoding: "gzip", expectCompressed: true},
		{name: "compresses with multiple encodings", path: "/api/v1/resolve/package/x", acceptEncoding: "gzip, deflate", expectCompressed: true},
		{name: "skips when client does not accept gzip", path: "/api/v1/resolve/package/x", acceptEncoding: "", expectCompressed: false},
		{name: "skips metrics endpoint", path: "/metrics", acceptEncoding: "gzip", expectCompressed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Compression())
			router.GET(tt.path, func(c *gin.Context) {
				c.String(http.StatusOK, payload)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			if tt.expectCompressed {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
			} else {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, w.Body.String())
			}
		})
	}
}
