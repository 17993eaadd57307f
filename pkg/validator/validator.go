package validator

import (
	"context"
	"log/slog"
	"sync"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/logger"
)

var sharedTagValidator = sync.OnceValue(func() *playground.Validate {
	return playground.New(playground.WithRequiredStructEnabled())
})

// Validator runs a fixed rule declaration against subjects of type T.
//
// A Validator holds no per-run state: every Validate call gets its own
// binding and error store, so one Validator may be shared across goroutines.
type Validator[T any] struct {
	declare func(*Rules[T])
	config
}

// New creates a Validator from a rule declaration. The declaration is invoked
// once per validation run and must bind fields with RuleFor before applying
// operators.
//
//	v := validator.New(func(r *validator.Rules[User]) {
//		r.RuleFor(validator.Field("username", func(u User) *string { return u.Username })).
//			NotNull().
//			NotEmpty().
//			Length(3, 20)
//	})
//
// New panics if declare is nil.
func New[T any](declare func(*Rules[T]), opts ...Option) *Validator[T] {
	if declare == nil {
		panic("validator: rule declaration cannot be nil")
	}

	v := &Validator[T]{
		declare: declare,
		config: config{
			logger:        logger.Discard(),
			defaultLocale: i18n.DefaultLanguage,
		},
	}
	for _, opt := range opts {
		opt(&v.config)
	}
	if v.localizer == nil {
		v.localizer = DefaultLocalizer()
	}
	if v.tags == nil {
		v.tags = sharedTagValidator()
	}

	return v
}

// Validate runs the declaration against subject with messages rendered for
// locale. An empty result means the subject is valid.
//
// The error is non-nil only for a broken declaration (see ErrInvalidSelector
// and friends); in that case no field errors are returned.
func (v *Validator[T]) Validate(locale string, subject T) (ValidationErrors, error) {
	if locale = i18n.NormalizeLocale(locale); locale == "" {
		locale = v.defaultLocale
	}

	r := &Rules[T]{
		subject: subject,
		locale:  locale,
		cfg:     &v.config,
		store:   newErrorStore(),
	}
	v.declare(r)

	if r.err != nil {
		v.logger.Error("invalid rule declaration", logger.Locale(locale), logger.Error(r.err))
		return nil, r.err
	}

	result := r.store.result()
	v.logger.Debug("validation completed",
		logger.Locale(locale),
		logger.ValidationErrors(len(result)),
		slog.Any("fields", result.Fields()),
	)
	return result, nil
}

// ValidateContext is Validate with the locale taken from ctx (see i18n.SetLocale).
func (v *Validator[T]) ValidateContext(ctx context.Context, subject T) (ValidationErrors, error) {
	locale, _ := i18n.LookupLocale(ctx)
	return v.Validate(locale, subject)
}

// Check validates subject and folds the outcome into a single error: nil when
// valid, ValidationErrors when invalid, or the configuration error.
func (v *Validator[T]) Check(ctx context.Context, subject T) error {
	errs, err := v.ValidateContext(ctx, subject)
	if err != nil {
		return err
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
