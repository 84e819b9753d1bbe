//go:build !integration

package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePackageName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "namespaced package", input: "@suifrens/core", valid: true},
		{name: "versioned-looking package", input: "@mvr/demo-v2", valid: true},
		{name: "missing at sign", input: "suifrens/core"},
		{name: "missing package", input: "@suifrens"},
		{name: "empty namespace", input: "@/core"},
		{name: "empty package", input: "@suifrens/"},
		{name: "extra separator", input: "@a/b/c"},
		{name: "empty", input: ""},
		{name: "only at sign", input: "@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageName(tt.input)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidPackageName)
			re, ok := AsError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.input, re.Name)
		})
	}
}

func TestValidateTypeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "fully qualified type", input: "@suifrens/core::suifren::SuiFren", valid: true},
		{name: "generic type", input: "@ns/pkg::mod::Type<T>", valid: true},
		{name: "nested generic type", input: "@ns/pkg::mod::Type<@ns/pkg::other::Inner>", valid: true},
		{name: "missing module", input: "@ns/pkg::Type"},
		{name: "missing at sign", input: "ns/pkg::mod::Type"},
		{name: "no separator", input: "@ns/pkg"},
		{name: "invalid package part", input: "@ns::mod::Type"},
		{name: "empty namespace", input: "@/pkg::mod::Type"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTypeName(tt.input)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidTypeName)
		})
	}
}
