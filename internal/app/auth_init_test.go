//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/guttosm/mvr-resolver/config"
	"github.com/guttosm/mvr-resolver/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeTokenService(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.AuthConfig
		wantNil bool
	}{
		{name: "disabled", cfg: config.AuthConfig{APIKeys: map[string]bool{"k": true}}, wantNil: true},
		{name: "enabled without keys", cfg: config.AuthConfig{Enabled: true}, wantNil: true},
		{
			name: "enabled with keys",
			cfg: config.AuthConfig{
				Enabled:        true,
				APIKeys:        map[string]bool{"k": true},
				JWTSecretKey:   "secret",
				AccessTokenTTL: time.Minute,
			},
		},
		{
			name: "default secret still works",
			cfg: config.AuthConfig{
				Enabled:        true,
				APIKeys:        map[string]bool{"k": true},
				JWTSecretKey:   defaultJWTSecret,
				AccessTokenTTL: time.Minute,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := initializeTokenService(tt.cfg)

			if tt.wantNil {
				assert.Nil(t, tokens)
				return
			}
			require.NotNil(t, tokens)

			resp, err := tokens.IssueToken("k")
			require.NoError(t, err)
			claims, err := tokens.ValidateToken(resp.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, service.KeyFingerprint("k"), claims.Subject)

			_, err = tokens.IssueToken("other")
			assert.ErrorIs(t, err, service.ErrInvalidAPIKey)
		})
	}
}
