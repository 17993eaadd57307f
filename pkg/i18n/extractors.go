package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// maxLangCodeLength follows the RFC 5646 recommendation.
const maxLangCodeLength = 35

// ExtractorConfig holds configuration for DefaultLangExtractor.
type ExtractorConfig struct {
	QueryParamName string
	HeaderName     string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor.
type ExtractorOption func(*ExtractorConfig)

// WithQueryParamName sets the query parameter inspected first. Empty disables it.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		c.QueryParamName = name
	}
}

// WithHeaderName sets the explicit language header inspected after the query
// parameter. Empty disables it.
func WithHeaderName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		c.HeaderName = name
	}
}

// WithSupportedLanguages restricts results to the given base languages.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) == 0 {
			return
		}
		c.SupportedLangs = langs
	}
}

// DefaultLangExtractor returns an extractor checking, in order:
//  1. query parameter (default "lang");
//  2. explicit header (default "Language");
//  3. Accept-Language, negotiated with ParseAcceptLanguage.
//
// Results are normalized to base language subtags. When SupportedLangs is set,
// unsupported values are skipped.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		QueryParamName: "lang",
		HeaderName:     "Language",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	supported := make([]string, 0, len(cfg.SupportedLangs))
	for _, lang := range cfg.SupportedLangs {
		if lang = NormalizeLocale(lang); lang != "" {
			supported = append(supported, lang)
		}
	}

	accept := func(raw string) string {
		raw = strings.TrimSpace(raw)
		if raw == "" || len(raw) > maxLangCodeLength {
			return ""
		}
		lang := NormalizeLocale(raw)
		if len(supported) > 0 && !slices.Contains(supported, lang) {
			return ""
		}
		return lang
	}

	return func(r *http.Request) string {
		if cfg.QueryParamName != "" {
			if lang := accept(r.URL.Query().Get(cfg.QueryParamName)); lang != "" {
				return lang
			}
		}

		if cfg.HeaderName != "" {
			if lang := accept(r.Header.Get(cfg.HeaderName)); lang != "" {
				return lang
			}
		}

		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		if len(supported) > 0 {
			return ParseAcceptLanguage(header, supported, "")
		}
		if langs := parseAcceptLanguageHeader(header); len(langs) > 0 {
			return NormalizeLocale(langs[0].lang)
		}
		return ""
	}
}
