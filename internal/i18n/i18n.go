// Package i18n translates user-facing API messages.
package i18n

import (
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to
// DefaultLocale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale extracts the preferred supported locale from the Accept-Language header.
// Only the first language range is considered.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// e.g. "en-US,en;q=0.9,pt;q=0.8"
	first, _, _ := strings.Cut(acceptLang, ",")
	lang, _, _ := strings.Cut(strings.TrimSpace(first), ";")
	lang, _, _ = strings.Cut(lang, "-")
	lang = strings.ToLower(strings.TrimSpace(lang))

	if _, ok := GetTranslator().messages[lang]; ok {
		return lang
	}
	return DefaultLocale
}

// Message translates key for the locale of the request.
func Message(c *gin.Context, key string) string {
	return GetTranslator().Translate(key, GetLocale(c))
}

// Locales returns the supported locales.
func (t *Translator) Locales() []string {
	locales := make([]string, 0, len(t.messages))
	for l := range t.messages {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":              "Invalid request",
			"error.invalid_request_body":         "Invalid request body",
			"error.internal_error":               "An unexpected error occurred",
			"error.unauthorized":                 "Unauthorized",
			"error.api_key_required":             "API key is required",
			"error.invalid_api_key":              "Invalid API key",
			"error.not_found":                    "Not found",
			"error.rate_limit_exceeded":          "Too many requests, please try again later",
			"error.invalid_token":                "Invalid or expired token",
			"error.token_required":               "Authentication token is required",
			"error.timeout":                      "The request timed out",
			"error.invalid_package_name":         "Invalid package name",
			"error.invalid_type_name":            "Invalid type name",
			"error.package_not_found":            "Package not found",
			"error.type_not_found":               "Type not found",
			"error.registry_rate_limited":        "The registry is rate limiting requests, please retry later",
			"error.registry_timeout":             "The registry did not answer in time",
			"error.registry_error":               "The registry returned an error",
			"error.too_many_concurrent_requests": "Too many concurrent registry requests",
			"error.cache_error":                  "The resolution cache is unavailable",
			"error.audit_unavailable":            "The audit log is not enabled",
		},
		"pt": {
			"error.invalid_request":              "Requisição inválida",
			"error.invalid_request_body":         "Corpo da requisição inválido",
			"error.internal_error":               "Ocorreu um erro inesperado",
			"error.unauthorized":                 "Não autorizado",
			"error.api_key_required":             "Chave de API é obrigatória",
			"error.invalid_api_key":              "Chave de API inválida",
			"error.not_found":                    "Não encontrado",
			"error.rate_limit_exceeded":          "Muitas requisições, tente novamente mais tarde",
			"error.invalid_token":                "Token inválido ou expirado",
			"error.token_required":               "Token de autenticação é obrigatório",
			"error.timeout":                      "A requisição excedeu o tempo limite",
			"error.invalid_package_name":         "Nome de pacote inválido",
			"error.invalid_type_name":            "Nome de tipo inválido",
			"error.package_not_found":            "Pacote não encontrado",
			"error.type_not_found":               "Tipo não encontrado",
			"error.registry_rate_limited":        "O registro está limitando requisições, tente novamente mais tarde",
			"error.registry_timeout":             "O registro não respondeu a tempo",
			"error.registry_error":               "O registro retornou um erro",
			"error.too_many_concurrent_requests": "Muitas requisições simultâneas ao registro",
			"error.cache_error":                  "O cache de resolução está indisponível",
			"error.audit_unavailable":            "O log de auditoria não está habilitado",
		},
		"nl": {
			"error.invalid_request":              "Ongeldig verzoek",
			"error.invalid_request_body":         "Ongeldige aanvraag body",
			"error.internal_error":               "Er is een onverwachte fout opgetreden",
			"error.unauthorized":                 "Niet geautoriseerd",
			"error.api_key_required":             "API-sleutel is vereist",
			"error.invalid_api_key":              "Ongeldige API-sleutel",
			"error.not_found":                    "Niet gevonden",
			"error.rate_limit_exceeded":          "Te veel verzoeken, probeer het later opnieuw",
			"error.invalid_token":                "Ongeldig of verlopen token",
			"error.token_required":               "Authenticatietoken is vereist",
			"error.timeout":                      "Het verzoek is verlopen",
			"error.invalid_package_name":         "Ongeldige pakketnaam",
			"error.invalid_type_name":            "Ongeldige typenaam",
			"error.package_not_found":            "Pakket niet gevonden",
			"error.type_not_found":               "Type niet gevonden",
			"error.registry_rate_limited":        "Het register beperkt verzoeken, probeer het later opnieuw",
			"error.registry_timeout":             "Het register antwoordde niet op tijd",
			"error.registry_error":               "Het register gaf een fout terug",
			"error.too_many_concurrent_requests": "Te veel gelijktijdige registerverzoeken",
			"error.cache_error":                  "De resolutiecache is niet beschikbaar",
			"error.audit_unavailable":            "Het auditlogboek is niet ingeschakeld",
		},
	}
}
