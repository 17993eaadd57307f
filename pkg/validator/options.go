package validator

import (
	"log/slog"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
)

// Option configures a Validator.
type Option func(*config)

type config struct {
	localizer     *i18n.Localizer
	logger        *slog.Logger
	defaultLocale string
	tags          *playground.Validate
}

// WithLocalizer sets the Localizer used to render messages.
// Defaults to DefaultLocalizer().
func WithLocalizer(l *i18n.Localizer) Option {
	return func(c *config) {
		if l != nil {
			c.localizer = l
		}
	}
}

// WithLogger sets the logger. Configuration errors are logged at Error level,
// completed runs at Debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaultLocale sets the locale used when a call supplies none.
func WithDefaultLocale(locale string) Option {
	return func(c *config) {
		if locale = i18n.NormalizeLocale(locale); locale != "" {
			c.defaultLocale = locale
		}
	}
}

// WithTagValidator sets the go-playground validator instance backing the Tag
// operator, e.g. one with custom validations registered.
func WithTagValidator(v *playground.Validate) Option {
	return func(c *config) {
		if v != nil {
			c.tags = v
		}
	}
}
