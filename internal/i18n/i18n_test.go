//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator_IsShared(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		key      string
		locale   string
		expected string
	}{
		{ErrKeyPackageNotFound, "en", "Package not found"},
		{ErrKeyPackageNotFound, "pt", "Pacote não encontrado"},
		{ErrKeyPackageNotFound, "nl", "Pakket niet gevonden"},
		{ErrKeyRegistryTimeout, "", "The registry did not answer in time"},
		{ErrKeyInvalidTypeName, "fr", "Invalid type name"},
		{"error.unknown", "en", "error.unknown"},
		{"error.unknown", "fr", "error.unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		acceptLanguage string
		expected       string
	}{
		{"", DefaultLocale},
		{"pt", "pt"},
		{"nl-NL", "nl"},
		{"PT-br", "pt"},
		{"en-US,en;q=0.9,pt;q=0.8", "en"},
		{"pt;q=0.8, en", "pt"},
		{"fr-FR,pt;q=0.5", DefaultLocale},
		{" ; ", DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.acceptLanguage, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}

func TestTranslator_AllLocalesCoverEveryKey(t *testing.T) {
	translator := NewTranslator()
	english := translator.messages[DefaultLocale]

	assert.Equal(t, []string{"en", "nl", "pt"}, translator.Locales())
	for _, locale := range translator.Locales() {
		for key := range english {
			assert.Contains(t, translator.messages[locale], key, "locale %s", locale)
		}
	}
}

func TestResolverKeysAreTranslated(t *testing.T) {
	translator := NewTranslator()
	keys := []string{
		ErrKeyInvalidPackageName, ErrKeyInvalidTypeName, ErrKeyPackageNotFound, ErrKeyTypeNotFound,
		ErrKeyRegistryRateLimited, ErrKeyRegistryTimeout, ErrKeyRegistryError,
		ErrKeyTooManyConcurrentRequests, ErrKeyCacheError, ErrKeyAuditUnavailable, ErrKeyTimeout,
	}
	for _, key := range keys {
		assert.NotEqual(t, key, translator.Translate(key, "en"), key)
	}
}

func TestMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set(AcceptLanguageHeader, "pt-BR")

	assert.Equal(t, "Pacote não encontrado", Message(c, ErrKeyPackageNotFound))
}
