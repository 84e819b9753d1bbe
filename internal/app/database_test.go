//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/mvr-resolver/config"
	"github.com/stretchr/testify/assert"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{
		Enabled: false,
		URI:     "mongodb://localhost:27017",
	})

	assert.Nil(t, components)
}
