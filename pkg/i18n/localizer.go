package i18n

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/samber/lo"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Localizer resolves message keys into formatted, localized strings.
//
// Lookup order for Resolve(key, locale):
//  1. the catalog template for the normalized locale;
//  2. the template for the fallback language ("en" by default);
//  3. the key itself.
//
// A Localizer is read-only after construction and safe for concurrent use.
type Localizer struct {
	catalog        *Catalog
	universal      *ut.UniversalTranslator
	templates      map[string]map[string]template
	numbers        map[string]locales.Translator
	fallbackLang   string
	missingLogMode bool
	logger         *slog.Logger
	extra          map[string]locales.Translator
}

// NewLocalizer builds a Localizer over catalog. Every template is parsed up
// front; a malformed one fails with ErrInvalidTemplate. Locales without CLDR
// data (builtin or supplied via WithLocaleTranslators) still resolve, but their
// numbers are printed without locale formatting.
func NewLocalizer(catalog *Catalog, opts ...Option) (*Localizer, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}

	l := &Localizer{
		catalog:      catalog,
		templates:    make(map[string]map[string]template, catalog.Len()),
		numbers:      make(map[string]locales.Translator),
		fallbackLang: DefaultLanguage,
		logger:       logger.Discard(),
		extra:        make(map[string]locales.Translator),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.registerTranslators()

	for _, key := range catalog.Keys() {
		entry, _ := catalog.Entry(key)
		parsed := make(map[string]template, len(entry))
		for locale, raw := range entry {
			tmpl, err := parseTemplate(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: key %q, locale %q: %v", ErrInvalidTemplate, key, locale, err)
			}
			parsed[locale] = tmpl
		}
		l.templates[key] = parsed
	}

	l.logger.Debug("localizer initialised",
		slog.Int("keys", catalog.Len()),
		slog.Any("languages", l.SupportedLanguages()),
	)

	return l, nil
}

// MustLocalizer is like NewLocalizer but panics on error.
func MustLocalizer(catalog *Catalog, opts ...Option) *Localizer {
	l, err := NewLocalizer(catalog, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// registerTranslators loads CLDR data for the fallback language and every
// catalog locale into the universal translator.
func (l *Localizer) registerTranslators() {
	wanted := lo.Uniq(append([]string{l.fallbackLang}, l.catalog.Locales()...))

	// ut.New needs a non-nil fallback even when the configured one has no CLDR data.
	var fallback locales.Translator = en.New()
	var supported []locales.Translator
	for i, locale := range wanted {
		tr, ok := l.cldrTranslator(locale)
		if !ok {
			l.logger.Warn("no CLDR data for locale, numbers use plain formatting", logger.Locale(locale))
			continue
		}
		if i == 0 {
			fallback = tr
		}
		supported = append(supported, tr)
	}
	l.universal = ut.New(fallback, supported...)

	for _, locale := range wanted {
		if trans, found := l.universal.GetTranslator(l.cldrCode(locale)); found {
			l.numbers[locale] = trans
		}
	}
}

func (l *Localizer) cldrTranslator(locale string) (locales.Translator, bool) {
	if tr, ok := l.extra[locale]; ok {
		return tr, true
	}
	if ctor, ok := builtinLocales[locale]; ok {
		return ctor(), true
	}
	return nil, false
}

// cldrCode is the Locale() code of the translator serving locale, which is
// what the universal translator indexes by.
func (l *Localizer) cldrCode(locale string) string {
	if tr, ok := l.cldrTranslator(locale); ok {
		return tr.Locale()
	}
	return locale
}

// Resolve returns the template for key in locale with args substituted into its
// positional placeholders. It never fails: an unknown key comes back unchanged.
func (l *Localizer) Resolve(key, locale string, args ...any) string {
	locale = NormalizeLocale(locale)

	if out, ok := l.format(key, locale, args); ok {
		return out
	}

	if l.missingLogMode {
		l.logger.Warn("translation not found", logger.Locale(locale), slog.String("key", key))
	}

	if locale != l.fallbackLang {
		if out, ok := l.format(key, l.fallbackLang, args); ok {
			return out
		}
	}

	if l.missingLogMode {
		l.logger.Warn("fallback translation not found", logger.Locale(l.fallbackLang), slog.String("key", key))
	}
	return key
}

// ResolveContext resolves key using the locale stored in ctx (see SetLocale).
func (l *Localizer) ResolveContext(ctx context.Context, key string, args ...any) string {
	return l.Resolve(key, GetLocale(ctx), args...)
}

// Has reports whether key has a template in exactly the normalized locale,
// without considering the fallback language.
func (l *Localizer) Has(key, locale string) bool {
	_, ok := l.catalog.Lookup(key, NormalizeLocale(locale))
	return ok
}

// SupportedLanguages returns the locales present in the catalog.
func (l *Localizer) SupportedLanguages() []string {
	return l.catalog.Locales()
}

// FallbackLanguage returns the language used when a locale has no template.
func (l *Localizer) FallbackLanguage() string {
	return l.fallbackLang
}

// Catalog returns the catalog backing this localizer.
func (l *Localizer) Catalog() *Catalog {
	return l.catalog
}

func (l *Localizer) format(key, locale string, args []any) (string, bool) {
	tmpl, ok := l.templates[key][locale]
	if !ok {
		return "", false
	}
	return tmpl.render(args, l.numbers[locale]), true
}
