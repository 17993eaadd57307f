package i18n

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

type localeContextKey struct{}

// SetLocale stores the normalized locale in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, NormalizeLocale(locale))
}

// LookupLocale returns the locale stored in ctx and whether one was set.
func LookupLocale(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale, locale != ""
}

// GetLocale returns the locale stored in ctx, or DefaultLanguage when none is set.
func GetLocale(ctx context.Context) string {
	if locale, ok := LookupLocale(ctx); ok {
		return locale
	}
	return DefaultLanguage
}

// LoggerExtractor adds the negotiated locale to log records written with a
// request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if locale, ok := LookupLocale(ctx); ok {
			return logger.Locale(locale), true
		}
		return slog.Attr{}, false
	}
}
