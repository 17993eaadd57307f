package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
)

func TestDefaultLangExtractor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []i18n.ExtractorOption
		target   string
		headers  map[string]string
		expected string
	}{
		{
			name:     "query parameter wins",
			target:   "/?lang=de-AT",
			headers:  map[string]string{"Language": "fr", "Accept-Language": "es"},
			expected: "de",
		},
		{
			name:     "explicit header before accept-language",
			target:   "/",
			headers:  map[string]string{"Language": "fr-CA", "Accept-Language": "es"},
			expected: "fr",
		},
		{
			name:     "accept-language highest quality",
			target:   "/",
			headers:  map[string]string{"Accept-Language": "es;q=0.4, ru-RU;q=0.9"},
			expected: "ru",
		},
		{
			name:     "nothing set",
			target:   "/",
			expected: "",
		},
		{
			name:     "custom query parameter",
			opts:     []i18n.ExtractorOption{i18n.WithQueryParamName("locale")},
			target:   "/?locale=ja&lang=fr",
			expected: "ja",
		},
		{
			name:     "query parameter disabled",
			opts:     []i18n.ExtractorOption{i18n.WithQueryParamName("")},
			target:   "/?lang=fr",
			headers:  map[string]string{"Accept-Language": "ko"},
			expected: "ko",
		},
		{
			name:     "custom header",
			opts:     []i18n.ExtractorOption{i18n.WithHeaderName("X-Locale")},
			target:   "/",
			headers:  map[string]string{"X-Locale": "tr", "Language": "fr"},
			expected: "tr",
		},
		{
			name:     "unsupported query value skipped",
			opts:     []i18n.ExtractorOption{i18n.WithSupportedLanguages("en", "fr")},
			target:   "/?lang=ja",
			headers:  map[string]string{"Accept-Language": "ja, fr-CH;q=0.5"},
			expected: "fr",
		},
		{
			name:     "unsupported everywhere",
			opts:     []i18n.ExtractorOption{i18n.WithSupportedLanguages("en", "fr")},
			target:   "/?lang=ja",
			headers:  map[string]string{"Accept-Language": "ko"},
			expected: "",
		},
		{
			name:     "oversized value rejected",
			target:   "/?lang=" + strings.Repeat("a", 40),
			headers:  map[string]string{"Accept-Language": "it"},
			expected: "it",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, i18n.DefaultLangExtractor(tt.opts...)(req))
		})
	}
}
