package i18n

import (
	"log/slog"

	"github.com/go-playground/locales"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Option configures a Localizer.
type Option func(*Localizer)

// WithFallbackLanguage sets the language consulted when the requested locale
// has no template for a key. Defaults to "en".
func WithFallbackLanguage(lang string) Option {
	return func(l *Localizer) {
		if lang = NormalizeLocale(lang); lang != "" {
			l.fallbackLang = lang
		}
	}
}

// WithLogger sets the logger. Nil is ignored; a discard logger is used by default.
func WithLogger(log *slog.Logger) Option {
	return func(l *Localizer) {
		if log != nil {
			l.logger = log
		}
	}
}

// WithMissingTranslationsLogging controls whether lookups that miss the
// requested locale are logged at warn level. Off by default.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(l *Localizer) {
		l.missingLogMode = enabled
	}
}

// WithNoLogging disables all logging.
func WithNoLogging() Option {
	return func(l *Localizer) {
		l.logger = logger.Discard()
		l.missingLogMode = false
	}
}

// WithLocaleTranslators registers CLDR translators for catalog locales that are
// not built in. Translators are keyed by the base language of their Locale()
// code, so sv_SE serves "sv".
func WithLocaleTranslators(translators ...locales.Translator) Option {
	return func(l *Localizer) {
		for _, tr := range translators {
			if tr == nil {
				continue
			}
			l.extra[NormalizeLocale(tr.Locale())] = tr
		}
	}
}
