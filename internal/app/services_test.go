//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/mvr-resolver/config"
	"github.com/guttosm/mvr-resolver/internal/circuitbreaker"
	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*config.Config)
		wantErr  bool
		validate func(*testing.T, *ServiceComponents)
	}{
		{
			name: "testnet defaults",
			validate: func(t *testing.T, s *ServiceComponents) {
				assert.Equal(t, model.TestnetEndpoint, s.Resolver.Config().EndpointURL)
				assert.Equal(t, "registry", s.RegistryCircuitBreaker.Name())
				assert.Equal(t, circuitbreaker.StateClosed, s.RegistryCircuitBreaker.State())
			},
		},
		{
			name:   "mainnet",
			mutate: func(c *config.Config) { c.Resolver.Network = "mainnet" },
			validate: func(t *testing.T, s *ServiceComponents) {
				assert.Equal(t, model.MainnetEndpoint, s.Resolver.Config().EndpointURL)
			},
		},
		{
			name:   "inline overrides",
			mutate: func(c *config.Config) { c.Resolver.OverridesJSON = `{"packages":{"@local/pkg":"0x1"}}` },
			validate: func(t *testing.T, s *ServiceComponents) {
				require.NotNil(t, s.Resolver.Config().Overrides)
				v, ok := s.Resolver.Config().Overrides.Package("@local/pkg")
				assert.True(t, ok)
				assert.Equal(t, "0x1", v)
			},
		},
		{
			name:    "malformed overrides",
			mutate:  func(c *config.Config) { c.Resolver.OverridesJSON = "{" },
			wantErr: true,
		},
		{
			name:    "non-positive timeout",
			mutate:  func(c *config.Config) { c.Resolver.Timeout = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			s, err := InitializeServices(cfg)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			t.Cleanup(s.Resolver.Close)
			tt.validate(t, s)
		})
	}
}
