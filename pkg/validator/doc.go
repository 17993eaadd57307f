// Package validator provides a fluent, localized validation engine for Go
// values.
//
// A Validator wraps a rule declaration: a function that binds fields of the
// subject with RuleFor and pipes each binding through a chain of operators.
// Operators run eagerly in declaration order, every failure is recorded
// against the bound field, and the run returns all failures at once as
// ValidationErrors. Messages are resolved through an i18n.Localizer, so the
// same declaration yields English, German or Persian text depending on the
// caller's locale.
//
// # Architecture
//
// Core building blocks:
//   - Validator[T]      – immutable definition built once with New
//   - Rules[T]          – per-run handle passed to the declaration
//   - Selector[T]       – names a field and reads its value (Field, Path)
//   - Chain[T]          – operators for the active binding
//   - ValidationErrors  – ordered []FieldError implementing error
//
// Each Validate call creates a fresh Rules value holding the active binding
// and the error store. A Validator can therefore be shared by concurrent
// requests without locking.
//
// # Usage
//
//	var userValidator = validator.New(func(r *validator.Rules[UserDto]) {
//		r.RuleFor(validator.Field("username", func(u UserDto) *string { return u.Username })).
//			NotNull().
//			NotEmpty().
//			Length(3, 20).
//			Matches(`^[a-zA-Z0-9_]+$`)
//
//		r.RuleFor(validator.Field("role", func(u UserDto) *string { return u.Role })).
//			In("Admin", "User", "Guest").
//			WithMessage("Unknown role.")
//
//		r.RuleFor(validator.Path[UserDto]("age")).
//			GreaterThan(17).
//			LessThan(100)
//	})
//
//	errs, err := userValidator.Validate("de-DE", dto)
//	if err != nil {
//		// broken declaration, e.g. an invalid regular expression
//	}
//	for _, fe := range errs {
//		fmt.Println(fe.Field, fe.Message)
//	}
//
// # Operators
//
// NotNull, NotEmpty, Length, Matches, Email, In, Min, Max, GreaterThan,
// LessThan, Must, Assert and Tag check the bound value. WithMessage and
// WithMessageKey rewrite the last failure of the current chain.
//
// Text operators (Matches, Email, In) skip blank values; Length and Tag skip
// absent ones. Min and Max only check values whose string form is an integer.
// GreaterThan and LessThan only check values of exactly the bound's type.
//
// # Error Handling
//
// Failures of the data are never returned as error from Validate; they are the
// ValidationErrors result. A broken declaration (nil selector, unknown member
// path, invalid pattern or tag, nil predicate) stops the run and is returned as
// the error, wrapping one of ErrInvalidSelector, ErrEmptyFieldName,
// ErrInvalidPattern, ErrInvalidTag or ErrNilPredicate. Check folds both into a
// single error; use IsValidationError or ExtractValidationErrors to tell them
// apart.
package validator
